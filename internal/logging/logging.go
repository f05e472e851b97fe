// Package logging builds the structured loggers shared by the CLI and the
// library packages.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every line written by New.
const Prefix = "sector"

// New creates a logger writing to w at the named level
// ("debug", "info", "warn", "error", "fatal").
func New(level string, w io.Writer, timestamps bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: timestamps,
		Prefix:          Prefix,
		Level:           lvl,
	})
	return logger, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
