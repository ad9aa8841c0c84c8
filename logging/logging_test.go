package logging

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warn ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"off", zerolog.Disabled},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.name))
		})
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var console, file bytes.Buffer
	log := New("warn", &console, &file)

	log.Info().Msg("quiet")
	log.Warn().Int("slot", 1).Msg("loud")

	assert.NotContains(t, console.String(), "quiet")
	assert.Contains(t, console.String(), "loud")
	assert.Contains(t, file.String(), "loud")
	assert.Contains(t, file.String(), "slot=1")
}

func TestNewWithoutWritersIsNop(t *testing.T) {
	log := New("debug")
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestLogFilePath(t *testing.T) {
	sessionStart := time.Date(2026, 2, 12, 21, 38, 36, 0, time.UTC)
	got := LogFilePath("logs", "tkuet", sessionStart)
	assert.Equal(t, filepath.Join("logs", "tkuet.20260212_213836.log"), got)
}
