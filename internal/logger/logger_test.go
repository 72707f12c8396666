package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewParsesLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"warn", "warn", zerolog.WarnLevel},
		{"mixed case", "Info", zerolog.InfoLevel},
		{"unknown falls back to info", "chatty", zerolog.InfoLevel},
		{"empty falls back to info", "", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New("production", tt.level)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}
