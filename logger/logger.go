// Package logger holds the process-wide zerolog instance.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var instance *zerolog.Logger

// Init configures the global logger with a console writer at the given level.
// Unknown levels fall back to info.
func Init(level string) {
	var logLevel zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}).
		With().Timestamp().Logger().Level(logLevel)
	instance = &logger
}

// Get returns the global logger. Before Init it returns a logger that
// discards everything, which keeps library code and tests quiet.
func Get() *zerolog.Logger {
	if instance == nil {
		logger := zerolog.New(io.Discard)
		instance = &logger
	}
	return instance
}
