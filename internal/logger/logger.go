package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the application logger. Production emits JSON lines on
// stdout; any other environment uses the console writer for readable
// development output.
func New(env, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if env == "production" {
		return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
	}

	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(lvl).With().Timestamp().Logger()
}
