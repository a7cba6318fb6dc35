package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/api/internal/config"
	"github.com/taskdeck/api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel string
		check    slog.Level
		enabled  bool
	}{
		{"debug level enables debug", "debug", slog.LevelDebug, true},
		{"info level disables debug", "info", slog.LevelDebug, false},
		{"warn level disables info", "warn", slog.LevelInfo, false},
		{"error level disables warn", "error", slog.LevelWarn, false},
		{"invalid level falls back to info", "loud", slog.LevelInfo, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.Equal(t, tc.enabled, log.Enabled(context.Background(), tc.check))
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := logger.WithLogger(context.Background(), log)
	assert.Same(t, log, logger.FromContext(ctx))

	// Absent logger falls back to the default rather than nil.
	assert.NotNil(t, logger.FromContext(context.Background()))
}
