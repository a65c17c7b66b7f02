package log_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ds3ds4/ds34drv/internal/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", log.LevelTrace},
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, log.ParseLevel(tt.in), "level for %q", tt.in)
	}
}

func TestSetupLoggerWithFileCreatesWritableFile(t *testing.T) {
	dir := t.TempDir()
	file := dir + "/out.log"

	logger, closers, err := log.SetupLogger("info", file)
	assert.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info("hello")
	for _, c := range closers {
		assert.NoError(t, c.Close())
	}
}

func TestSetupLoggerWithoutFileReturnsNoClosers(t *testing.T) {
	logger, closers, err := log.SetupLogger("info", "")
	assert.NoError(t, err)
	assert.NotNil(t, logger)
	assert.Empty(t, closers)
}
