package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres/listener"
	"github.com/heartmarshall/campus-ballot/internal/config"
	"github.com/heartmarshall/campus-ballot/internal/tallyfeed"
	"github.com/heartmarshall/campus-ballot/internal/transport/middleware"
	"github.com/heartmarshall/campus-ballot/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations when enabled and serves HTTP until ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("election", cfg.Election.Name),
	)

	if cfg.Database.AutoMigrate {
		if err := Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	c, err := Build(cfg, pool, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter()
	tallies := listener.New(pool, c.Hub, listener.Config{
		ReconnectBase: cfg.Realtime.ReconnectBase,
		ReconnectMax:  cfg.Realtime.ReconnectMax,
	}, logger)

	handler := rest.NewRouter(rest.Handlers{
		Health: rest.NewHealthHandler(pool, feedHealth{tallies, c.Hub}, BuildVersion()),
		Auth:   rest.NewAuthHandler(c.Auth, c.Ballot, cfg.Election.AllowedEmailDomain, logger),
		Ballot: rest.NewBallotHandler(c.Ballot, c.Catalog.AllPositions(), cfg.Election.Name, cfg.Election.AllowedEmailDomain, logger),
		Admin: rest.NewAdminHandler(c.Ballot, cfg.Election.Name, cfg.Realtime.StreamWriteTimeout,
			originPatterns(cfg.CORS.AllowedOrigins), logger),
	}, rest.Middlewares{
		Global: []middleware.Middleware{
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
		},
		Auth:        middleware.Auth(c.Auth),
		AuthLimit:   limiter.Limit(cfg.RateLimit.AuthPerMinute),
		BallotLimit: limiter.Limit(cfg.RateLimit.BallotPerMinute),
		TrustProxy:  cfg.Server.TrustProxy,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return tallies.Run(gctx)
	})

	g.Go(func() error {
		return limiter.Run(gctx, cfg.RateLimit.CleanupInterval)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(ctx, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// feedHealth joins the listener's connection state with the hub's
// subscriber count for /health.
type feedHealth struct {
	listener *listener.Listener
	hub      *tallyfeed.Hub
}

func (f feedHealth) Connected() bool  { return f.listener.Connected() }
func (f feedHealth) Subscribers() int { return f.hub.Len() }
