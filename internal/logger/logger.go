// ABOUTME: Structured logger construction shared by CLI and MCP surfaces
// ABOUTME: Console output on stderr so stdout stays clean for command output
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger at the given level. Logs go to stderr;
// command output owns stdout.
func New(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Discard returns a logger that drops everything, for quiet mode.
func Discard() zerolog.Logger {
	return zerolog.New(io.Discard)
}
