// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at w with the given level and format.
// Format is "console" for human output or "json".
func Setup(w io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if w == nil {
		w = os.Stderr
	}

	zerolog.TimeFieldFormat = time.RFC3339
	switch strings.ToLower(format) {
	case "json":
		log.Logger = zerolog.New(w).With().Timestamp().Logger().Level(lvl)
	case "console", "":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger().Level(lvl)
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}
