// Command cleanup-tokens deletes expired and revoked refresh tokens and
// spent email verification tokens. It is intended to be run from cron.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/campus-ballot/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ballot/internal/app"
	"github.com/heartmarshall/campus-ballot/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	c, err := app.Build(cfg, pool, logger)
	if err != nil {
		logger.Error("build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	n, err := c.Auth.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Deleted %d expired tokens.\n", n)
}
