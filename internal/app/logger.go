package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/campus-ballot/internal/config"
)

// NewLogger builds the process logger on stderr and installs it as the slog
// default. "text" output includes source locations for local work; anything
// else gets JSON.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newLogHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

func newLogHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: format == "text",
	}
	if format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// parseLevel defaults to info for empty or unknown names.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
