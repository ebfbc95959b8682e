// Package logging installs the process-wide slog handler.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/spacehole-rogue/helmsman/internal/config"
)

// New builds a logger writing to w with the configured level and format.
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Init makes a stdout logger the slog default.
func Init(cfg config.LoggingConfig) {
	slog.SetDefault(New(cfg, os.Stdout))

	logger := slog.With("component", "logger")
	logger.Debug("Logger initialized",
		"level", cfg.Level,
		"json_format", cfg.JSONFormat,
	)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
