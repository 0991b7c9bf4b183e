// Package logging provides structured logging with zerolog.
//
// Logs go to stderr through a console writer so they never mix with
// redacted document text on stdout.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing human-readable output to w. Verbose enables
// debug-level events; otherwise only warnings and errors are emitted so
// scripted use stays quiet.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}

// Default returns the standard stderr logger.
func Default(verbose bool) zerolog.Logger {
	return New(os.Stderr, verbose)
}
