package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/campus-ballot/internal/adapter/mail"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/tally"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/token"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/user"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/verification"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/voter"
	"github.com/heartmarshall/campus-ballot/internal/auth"
	"github.com/heartmarshall/campus-ballot/internal/catalog"
	"github.com/heartmarshall/campus-ballot/internal/config"
	authsvc "github.com/heartmarshall/campus-ballot/internal/service/auth"
	ballotsvc "github.com/heartmarshall/campus-ballot/internal/service/ballot"
	"github.com/heartmarshall/campus-ballot/internal/tallyfeed"
)

// Components are the services built from one configuration. The server and
// the operator CLI share them.
type Components struct {
	Catalog *catalog.Catalog
	Hub     *tallyfeed.Hub
	Auth    *authsvc.Service
	Ballot  *ballotsvc.Service
}

// Build wires repositories and services on top of pool.
func Build(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Components, error) {
	cat, err := LoadCatalog(cfg.Election.CatalogPath)
	if err != nil {
		return nil, err
	}

	txm := postgres.NewTxManager(pool)
	hub := tallyfeed.NewHub(cat.PositionIDs())

	users := user.New(pool)
	authService := authsvc.NewService(
		logger,
		users,
		token.New(pool),
		verification.New(pool),
		txm,
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		auth.NewPasswordHasher(cfg.Auth.PasswordHashCost),
		mail.NewVerificationMailer(newMailSender(cfg.Mail, logger), cfg.Election.Name),
		cfg.Auth,
		cfg.Election,
	)

	ballotService := ballotsvc.NewService(
		logger,
		tally.New(pool),
		voter.New(pool),
		txm,
		authService,
		hub,
		cat,
		cfg.Election,
		cfg.Realtime,
	)

	return &Components{
		Catalog: cat,
		Hub:     hub,
		Auth:    authService,
		Ballot:  ballotService,
	}, nil
}

// LoadCatalog returns the embedded catalog, or the one at path when set.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}

type mailSender interface {
	Send(ctx context.Context, msg mail.Message) error
}

func newMailSender(cfg config.MailConfig, logger *slog.Logger) mailSender {
	if cfg.Driver == "smtp" {
		return mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Username: cfg.Username,
			Password: cfg.Password,
			From:     cfg.From,
		})
	}
	return mail.NewLogSender(logger)
}

// originPatterns converts CORS origins such as "https://vote.example.org"
// into the host patterns the websocket handshake checks.
func originPatterns(allowed string) []string {
	var patterns []string
	for _, o := range strings.Split(allowed, ",") {
		o = strings.TrimSpace(o)
		switch {
		case o == "":
			continue
		case o == "*":
			patterns = append(patterns, "*")
		case strings.Contains(o, "://"):
			if u, err := url.Parse(o); err == nil && u.Host != "" {
				patterns = append(patterns, u.Host)
			}
		default:
			patterns = append(patterns, o)
		}
	}
	return patterns
}
