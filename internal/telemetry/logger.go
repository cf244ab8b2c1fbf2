// Package telemetry wires the zerolog logger shared by the search
// engines and the CLI drivers.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// New builds a console-writer logger at the given level. Passing
// zerolog.Disabled yields a logger that costs nothing per call,
// matching the library's default when embedded rather than run as a
// CLI.
func New(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Caller().Logger()
}

// Silent returns a logger that discards everything, for library use
// and for tests that don't want search progress on stderr.
func Silent() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.Disabled)
}
