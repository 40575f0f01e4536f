// Package logging configures the zerolog logger shared by every command.
// Console output is used on a terminal, structured JSON when piped.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps a level name to a zerolog level. Unknown or empty names
// fall back to info.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// NewConsole creates a human-readable logger for terminal sessions.
func NewConsole(w io.Writer, level zerolog.Level, noColor bool) zerolog.Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
		NoColor:    noColor || os.Getenv("NO_COLOR") != "",
	}
	return New(cw, level)
}

// Setup builds the process logger and installs it as the zerolog global so
// package-level log calls and locally constructed loggers agree on level and
// format. Diagnostics go to stderr; stdout stays reserved for report output.
func Setup(level string, noColor bool) zerolog.Logger {
	lvl := ParseLevel(level)
	zerolog.SetGlobalLevel(lvl)

	var logger zerolog.Logger
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		logger = NewConsole(os.Stderr, lvl, noColor)
	} else {
		logger = New(os.Stderr, lvl)
	}

	log.Logger = logger
	return logger
}
