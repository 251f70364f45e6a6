// Package logging provides a zerolog-backed tally.Logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Logger implements tally.Logger on top of zerolog.
type Logger struct {
	log zerolog.Logger
}

// New creates a logger writing to w at level. Output is human readable when w
// is a terminal and JSON otherwise.
func New(w io.Writer, level string) *Logger {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		w = zerolog.ConsoleWriter{Out: f, TimeFormat: time.Kitchen}
	}

	return &Logger{
		log: zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger(),
	}
}

// FromZerolog wraps an existing zerolog logger.
func FromZerolog(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

// ParseLevel maps a level name to a zerolog level. Unknown names select info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return parsed
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.Error().Fields(fields).Msg(msg)
}
