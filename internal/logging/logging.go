// Package logging configures the stderr logger.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when no level or an unknown level is configured.
const DefaultLevel = zerolog.WarnLevel

// New returns a human-readable console logger writing to w.
func New(w io.Writer, level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// Setup installs a logger writing to w as the global zerolog logger.
func Setup(w io.Writer, level string) {
	log.Logger = New(w, level)
}

// ParseLevel maps a level name to a zerolog level, falling back to DefaultLevel.
func ParseLevel(level string) zerolog.Level {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return DefaultLevel
	}
	return lvl
}
