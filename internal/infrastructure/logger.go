// Package infrastructure wires up cross-cutting runtime concerns; currently
// just structured logging.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"hrinsights/internal/config"
)

// InitializeLogger creates the application slog logger from configuration
// and installs it as the default. The returned closer releases the log file
// when file output is enabled; it is safe to call even on error.
func InitializeLogger(cfg config.LoggingConfig) (*slog.Logger, func() error, error) {
	output, closer, err := openOutput(cfg)
	if err != nil {
		return nil, func() error { return nil }, err
	}

	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.Level)}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closer, nil
}

// openOutput resolves the configured log destination.
func openOutput(cfg config.LoggingConfig) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(cfg.Output) {
	case "", "console":
		return os.Stderr, noop, nil
	case "file", "both":
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, noop, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open log file: %w", err)
		}
		if strings.EqualFold(cfg.Output, "both") {
			return io.MultiWriter(os.Stderr, file), file.Close, nil
		}
		return file, file.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown log output %q", cfg.Output)
	}
}

// parseLogLevel converts a level name to slog.Level, defaulting to Info.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
