package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ballot/internal/auth"
	"github.com/heartmarshall/campus-ballot/internal/config"
	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// verificationRepo defines the email verification token storage.
type verificationRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.VerificationToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.VerificationToken, error)
	MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	LatestCreatedAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error)
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type verificationMailer interface {
	SendVerification(ctx context.Context, to, name, link string, expires time.Duration) error
}

// Service implements the identity operations: accounts, sessions and email
// verification.
type Service struct {
	log           *slog.Logger
	users         userRepo
	tokens        tokenRepo
	verifications verificationRepo
	tx            txManager
	jwt           jwtManager
	passwords     passwordHasher
	mailer        verificationMailer
	cfg           config.AuthConfig
	election      config.ElectionConfig
	emailPattern  *regexp.Regexp
	now           func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	verifications verificationRepo,
	tx txManager,
	jwt jwtManager,
	passwords passwordHasher,
	mailer verificationMailer,
	cfg config.AuthConfig,
	election config.ElectionConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "auth"),
		users:         users,
		tokens:        tokens,
		verifications: verifications,
		tx:            tx,
		jwt:           jwt,
		passwords:     passwords,
		mailer:        mailer,
		cfg:           cfg,
		election:      election,
		emailPattern:  regexp.MustCompile(`^[a-zA-Z0-9._-]+` + regexp.QuoteMeta(election.AllowedEmailDomain) + `$`),
		now:           time.Now,
	}
}

// eligibleEmail reports whether email is an institutional address.
func (s *Service) eligibleEmail(email string) bool {
	return s.emailPattern.MatchString(email)
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := auth.GenerateOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, s.now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    s.cfg.AccessTokenTTL,
		User:         user,
	}, nil
}

// issueVerification stores a fresh verification token and returns the link
// to mail.
func (s *Service) issueVerification(ctx context.Context, userID uuid.UUID) (string, error) {
	raw, hash, err := auth.GenerateOpaqueToken()
	if err != nil {
		return "", fmt.Errorf("generate verification token: %w", err)
	}

	if _, err := s.verifications.Create(ctx, userID, hash, s.now().Add(s.cfg.VerificationTokenTTL)); err != nil {
		return "", fmt.Errorf("store verification token: %w", err)
	}

	return verifyLink(s.cfg.VerifyURL, raw)
}

func verifyLink(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse verify url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// sendVerification mails the link. Delivery failures are logged rather than
// returned; the user can ask for another email.
func (s *Service) sendVerification(ctx context.Context, user *domain.User, link string) {
	err := s.mailer.SendVerification(ctx, user.Email, user.FullName, link, s.cfg.VerificationTokenTTL)
	if err != nil {
		s.log.ErrorContext(ctx, "verification email failed",
			slog.String("user_id", user.ID.String()),
			slog.String("error", err.Error()))
	}
}
