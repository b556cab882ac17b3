package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestInit tests log level configuration.
func TestInit(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

// TestWithContext tests contextual field attachment.
func TestWithContext(t *testing.T) {
	Init("info", false)

	log := WithContext(map[string]interface{}{
		"request_id": "req-1",
		"species":    "MACACO",
	})

	// Logging must not panic with contextual fields attached
	log.Info().Msg("test message")
}
