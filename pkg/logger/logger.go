// Package logger provides a configured zerolog logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger writing structured lines to stderr, leaving stdout
// for command output. NUDGE_DEBUG=1 enables debug-level events.
func New(component string) zerolog.Logger {
	level := zerolog.InfoLevel
	if os.Getenv("NUDGE_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().
		Str("component", component).
		Timestamp().
		Logger()
}
