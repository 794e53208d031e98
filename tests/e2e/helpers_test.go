//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/listener"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/tally"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/campus-ballot/internal/adapter/postgres/user"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/verification"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/voter"
	authpkg "github.com/heartmarshall/campus-ballot/internal/auth"
	"github.com/heartmarshall/campus-ballot/internal/catalog"
	"github.com/heartmarshall/campus-ballot/internal/config"
	"github.com/heartmarshall/campus-ballot/internal/domain"
	authsvc "github.com/heartmarshall/campus-ballot/internal/service/auth"
	ballotsvc "github.com/heartmarshall/campus-ballot/internal/service/ballot"
	"github.com/heartmarshall/campus-ballot/internal/tallyfeed"
	"github.com/heartmarshall/campus-ballot/internal/transport/middleware"
	"github.com/heartmarshall/campus-ballot/internal/transport/rest"
)

const (
	emailDomain = "@kab.ac.ug"
	adminEmail  = "returning.officer@kab.ac.ug"
	password    = "correct-horse"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Mail   *capturingMailer

	// President and Treasurer are unique per server so tally assertions do
	// not see votes cast by earlier tests.
	President domain.PositionID
	Treasurer domain.PositionID
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type feedStatus struct {
	listener *listener.Listener
	hub      *tallyfeed.Hub
}

func (f feedStatus) Connected() bool  { return f.listener.Connected() }
func (f feedStatus) Subscribers() int { return f.hub.Len() }

// capturingMailer records verification links instead of sending them.
type capturingMailer struct {
	mu    sync.Mutex
	links map[string]string
}

func (m *capturingMailer) SendVerification(_ context.Context, to, _, link string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[to] = link
	return nil
}

// token returns the raw verification token last mailed to email.
func (m *capturingMailer) token(t *testing.T, email string) string {
	t.Helper()
	m.mu.Lock()
	link, ok := m.links[email]
	m.mu.Unlock()
	require.True(t, ok, "no verification email sent to %s", email)

	u, err := url.Parse(link)
	require.NoError(t, err)
	tok := u.Query().Get("token")
	require.NotEmpty(t, tok, "verification link without token: %s", link)
	return tok
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Ballot catalog with positions no other test votes on.
	president := testhelper.UniquePosition("president")
	treasurer := testhelper.UniquePosition("treasurer")
	cat, err := catalog.New([]domain.Position{
		{ID: president, Title: "GUILD PRESIDENT", Candidates: []domain.Candidate{
			{ID: "alice", Name: "Alice Namubiru"},
			{ID: "bob", Name: "Bob Okello"},
		}},
		{ID: treasurer, Title: "TREASURER", Candidates: []domain.Candidate{
			{ID: "dan", Name: "Dan Mugisha"},
		}},
	})
	require.NoError(t, err)

	// 4. Configuration.
	authCfg := config.AuthConfig{
		JWTSecret:                  "test-secret-at-least-32-chars-long!!",
		JWTIssuer:                  "test-issuer",
		AccessTokenTTL:             15 * time.Minute,
		RefreshTokenTTL:            720 * time.Hour,
		PasswordHashCost:           4,
		PasswordMinLength:          6,
		VerificationTokenTTL:       time.Hour,
		VerificationResendCooldown: time.Minute,
		VerifyURL:                  "http://ballot.test/auth/verify",
	}
	election := config.ElectionConfig{
		Name:               "Test Elections",
		AllowedEmailDomain: emailDomain,
		AdminEmails:        []string{adminEmail},
	}

	// 5. Services.
	mailer := &capturingMailer{links: make(map[string]string)}
	hub := tallyfeed.NewHub(cat.PositionIDs())

	authService := authsvc.NewService(
		logger,
		userrepo.New(pool),
		token.New(pool),
		verification.New(pool),
		txm,
		authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL),
		authpkg.NewPasswordHasher(authCfg.PasswordHashCost),
		mailer,
		authCfg,
		election,
	)

	ballotService := ballotsvc.NewService(
		logger,
		tally.New(pool),
		voter.New(pool),
		txm,
		authService,
		hub,
		cat,
		election,
		config.RealtimeConfig{LoaderWait: time.Millisecond},
	)

	// 6. Change feed from PostgreSQL NOTIFY.
	feed := listener.New(pool, hub, listener.Config{
		ReconnectBase: 50 * time.Millisecond,
		ReconnectMax:  time.Second,
	}, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = feed.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// 7. Router.
	handler := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, feedStatus{feed, hub}, "test-version"),
		Auth:   rest.NewAuthHandler(authService, ballotService, emailDomain, logger),
		Ballot: rest.NewBallotHandler(ballotService, cat.AllPositions(), election.Name, emailDomain, logger),
		Admin:  rest.NewAdminHandler(ballotService, election.Name, 5*time.Second, []string{"*"}, logger),
	}, rest.Middlewares{
		Global: []middleware.Middleware{
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.CORS(config.CORSConfig{
				AllowedOrigins:   "*",
				AllowedMethods:   "GET,POST,OPTIONS",
				AllowedHeaders:   "Authorization,Content-Type",
				AllowCredentials: true,
				MaxAge:           86400,
			}),
		},
		Auth: middleware.Auth(authService),
	})

	// 8. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:       srv.URL,
		Client:    srv.Client(),
		Pool:      pool,
		Mail:      mailer,
		President: president,
		Treasurer: treasurer,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// restRequest sends a JSON request and returns the raw response.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// restJSON sends a request and decodes the JSON response body.
func restJSON(t *testing.T, ts *testServer, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	resp := restRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// ---------------------------------------------------------------------------
// Account helpers.
// ---------------------------------------------------------------------------

type account struct {
	ID           string
	Email        string
	AccessToken  string
	RefreshToken string
}

func newEmail(prefix string) string {
	return fmt.Sprintf("%s.%s%s", prefix, uuid.NewString()[:8], emailDomain)
}

// signUp registers email through the API.
func signUp(t *testing.T, ts *testServer, email string) account {
	t.Helper()

	status, body := restJSON(t, ts, http.MethodPost, "/auth/signup", "", map[string]any{
		"email":              email,
		"password":           password,
		"fullName":           "Test Student",
		"course":             "BSc Computer Science",
		"yearOfStudy":        2,
		"registrationNumber": "24/U/" + uuid.NewString()[:8],
	})
	require.Equal(t, http.StatusCreated, status, "signup: %v", body)
	return toAccount(t, email, body)
}

// verifiedVoter signs up and follows the mailed verification link.
func verifiedVoter(t *testing.T, ts *testServer) account {
	t.Helper()

	acc := signUp(t, ts, newEmail("voter"))
	verify(t, ts, acc.Email)
	return acc
}

func verify(t *testing.T, ts *testServer, email string) {
	t.Helper()

	resp := restRequest(t, ts, http.MethodGet, "/auth/verify?token="+url.QueryEscape(ts.Mail.token(t, email)), "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// adminAccount signs up the configured administrator, once per database.
func adminAccount(t *testing.T, ts *testServer) account {
	t.Helper()

	status, body := restJSON(t, ts, http.MethodPost, "/auth/login", "", map[string]any{
		"email":    adminEmail,
		"password": password,
	})
	if status == http.StatusOK {
		return toAccount(t, adminEmail, body)
	}
	return signUp(t, ts, adminEmail)
}

func toAccount(t *testing.T, email string, body map[string]any) account {
	t.Helper()

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object in response")
	access, _ := body["accessToken"].(string)
	refresh, _ := body["refreshToken"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	return account{
		ID:           user["id"].(string),
		Email:        email,
		AccessToken:  access,
		RefreshToken: refresh,
	}
}

func (ts *testServer) fullBallot() map[string]any {
	return map[string]any{
		"selections": map[domain.PositionID]domain.CandidateID{
			ts.President: "alice",
			ts.Treasurer: "dan",
		},
	}
}
