package logger

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger zerolog.Logger
	once         sync.Once
)

// GetLogger returns the fallback process logger. Components built through
// wiring receive an injected logger; this covers code that runs before
// configuration is loaded.
func GetLogger() zerolog.Logger {
	once.Do(func() {
		globalLogger = zerolog.New(consoleWriter()).With().Timestamp().Logger().Level(zerolog.InfoLevel)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
	return globalLogger
}

// New constructs the process logger from the configured level and format and
// tags every line with the service name.
func New(service, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	var out io.Writer
	switch strings.ToLower(format) {
	case "json":
		out = os.Stdout
	case "console":
		out = consoleWriter()
	default:
		return zerolog.Logger{}, errors.New("unsupported log format: " + format)
	}

	zerolog.SetGlobalLevel(lvl)
	globalLogger = zerolog.New(out).With().Timestamp().Str("service", service).Logger().Level(lvl)
	return globalLogger, nil
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
}
