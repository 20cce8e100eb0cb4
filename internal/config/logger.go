package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a structured logger based on configuration. The returned
// cleanup flushes and closes the log file, and is a no-op when logging to
// stdout.
func (c *LoggerConfig) NewLogger() (*slog.Logger, func() error, error) {
	level := parseLogLevel(c.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug || level == slog.LevelError,
	}

	cleanup := func() error { return nil }
	sink := os.Stdout
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		sink = f
		cleanup = f.Close
	}

	return slog.New(slog.NewJSONHandler(sink, opts)), cleanup, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
