package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrinsights/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "warning", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "ERROR", want: slog.LevelError},
		{level: "unknown", want: slog.LevelInfo},
		{level: "", want: slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.level), "level %q", tt.level)
	}
}

func TestInitializeLoggerConsole(t *testing.T) {
	logger, closer, err := InitializeLogger(config.LoggingConfig{Level: "info", Format: "text", Output: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.NoError(t, closer())
}

func TestInitializeLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, closer, err := InitializeLogger(config.LoggingConfig{
		Level: "debug", Format: "json", Output: "file", FilePath: path,
	})
	require.NoError(t, err)
	defer closer()

	logger.Info("pipeline started", slog.String("dataset", "hr"))
	require.NoError(t, closer())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"pipeline started"`)
	assert.Contains(t, string(content), `"dataset":"hr"`)
}

func TestInitializeLoggerUnknownOutput(t *testing.T) {
	_, _, err := InitializeLogger(config.LoggingConfig{Level: "info", Output: "syslog"})
	assert.Error(t, err)
}
