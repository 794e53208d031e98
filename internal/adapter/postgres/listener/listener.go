// Package listener turns PostgreSQL tally notifications into hub events.
package listener

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// Channel is the NOTIFY channel written by the tallies trigger.
const Channel = "tally_changed"

type publisher interface {
	Publish(id domain.PositionID)
	PublishAll()
}

// Config controls reconnection backoff.
type Config struct {
	ReconnectBase time.Duration
	ReconnectMax  time.Duration
}

// Listener holds a dedicated connection outside the pool, since LISTEN
// state is per session.
type Listener struct {
	connConfig *pgx.ConnConfig
	pub        publisher
	cfg        Config
	logger     *slog.Logger
	connected  atomic.Bool
}

// New creates a Listener that connects with the pool's settings.
func New(pool *pgxpool.Pool, pub publisher, cfg Config, logger *slog.Logger) *Listener {
	return &Listener{
		connConfig: pool.Config().ConnConfig.Copy(),
		pub:        pub,
		cfg:        cfg,
		logger:     logger.With("component", "tally_listener"),
	}
}

// Run listens until ctx is cancelled. After every successful (re)connect it
// publishes a change for all positions, so notifications sent while the
// connection was down are not lost. It returns nil on cancellation.
func (l *Listener) Run(ctx context.Context) error {
	for {
		conn, err := l.connect(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		l.logger.InfoContext(ctx, "listening for tally changes", slog.String("channel", Channel))
		l.connected.Store(true)
		l.pub.PublishAll()

		err = l.receive(ctx, conn)
		l.connected.Store(false)

		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		_ = conn.Close(closeCtx)
		cancel()

		if ctx.Err() != nil {
			return nil
		}
		l.logger.WarnContext(ctx, "tally listener lost connection", slog.String("error", err.Error()))
	}
}

// Connected reports whether the listener currently holds a LISTEN session.
func (l *Listener) Connected() bool {
	return l.connected.Load()
}

func (l *Listener) connect(ctx context.Context) (*pgx.Conn, error) {
	b := retry.NewExponential(l.cfg.ReconnectBase)
	b = retry.WithCappedDuration(l.cfg.ReconnectMax, b)
	b = retry.WithJitterPercent(10, b)

	return retry.DoValue(ctx, b, func(ctx context.Context) (*pgx.Conn, error) {
		conn, err := pgx.ConnectConfig(ctx, l.connConfig)
		if err != nil {
			l.logger.WarnContext(ctx, "tally listener connect failed", slog.String("error", err.Error()))
			return nil, retry.RetryableError(fmt.Errorf("connect: %w", err))
		}

		if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
			_ = conn.Close(ctx)
			return nil, retry.RetryableError(fmt.Errorf("listen: %w", err))
		}
		return conn, nil
	})
}

func (l *Listener) receive(ctx context.Context, conn *pgx.Conn) error {
	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		if n.Channel != Channel || n.Payload == "" {
			continue
		}
		l.pub.Publish(domain.PositionID(n.Payload))
	}
}
