package logging

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{verbosity: 0, want: zerolog.WarnLevel},
		{verbosity: 1, want: zerolog.InfoLevel},
		{verbosity: 2, want: zerolog.DebugLevel},
		{verbosity: 3, want: zerolog.TraceLevel},
		{verbosity: 9, want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel())
	}
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger("test.component")
	require.NotNil(t, logger)

	// Must not panic even before SetupLogger runs.
	logger.Debug().Msg("probe")
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()
	assert.Equal(t, "instl.log", filepath.Base(path))
	assert.Contains(t, path, "instl")
}
