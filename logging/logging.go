// Package logging configures the global zerolog logger. Logs go to stderr so
// stdout only ever carries rendered output.
package logging

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var startupMessages = []string{
	"cooking up some system info",
	"steaming a fresh bowl of facts",
	"rinsing the rice",
	"measuring out the terminal",
	"plating your system",
}

// LevelFor maps the -v count to a log level.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup configures the global logger based on verbosity level, writing
// human readable lines to w.
func Setup(verbosity int, w io.Writer, noColor bool) {
	zerolog.SetGlobalLevel(LevelFor(verbosity))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// StartupMessage logs a random greeting at info level unless disabled.
func StartupMessage(disabled bool) {
	if disabled {
		return
	}
	log.Info().Msg(startupMessages[rand.IntN(len(startupMessages))])
}

// LogDuration logs the duration of an operation
func LogDuration(start time.Time, operation string) {
	log.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("Operation completed")
}
