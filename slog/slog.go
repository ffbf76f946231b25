// Package slog provides logging decorators for pagecopy services.
package slog

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// NewLogger returns a logger for one invocation. Every record carries a
// "run" attribute so the lines of a single run can be grouped. When
// verbose is false the logger discards everything.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		w = io.Discard
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("run", uuid.NewString())
}

// Fingerprint returns a short hash of s for correlating payloads in logs
// without writing their content.
func Fingerprint(s string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(s))
}
