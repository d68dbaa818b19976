package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. It is safe to call before the
// config is loaded; Configure adjusts the level afterwards.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Caller().
		Logger()
}

// Configure applies the level and output format from the loaded config.
func Configure(level string, pretty bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if !pretty {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	log.Debug().Str("level", lvl.String()).Bool("pretty", pretty).Msg("Logger configured")
}
