package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pluqqy/pluqqy-todo/pkg/models"
)

// NewLogger builds the application logger. The terminal belongs to the TUI,
// so records go to a JSON file when one is configured and are dropped otherwise.
// The returned close function must be called on exit.
func NewLogger(cfg models.LogSettings) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), noop, nil
	}

	level, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, noop, err
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}

// ParseLogLevel maps a settings level name to a slog level
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", name)
	}
}
