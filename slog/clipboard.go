package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagecopy"
)

// Ensure LoggingClipboard implements pagecopy.Clipboard.
var _ pagecopy.Clipboard = (*LoggingClipboard)(nil)

// LoggingClipboard wraps a Clipboard with logging.
type LoggingClipboard struct {
	next   pagecopy.Clipboard
	logger *slog.Logger
}

// NewLoggingClipboard creates a new LoggingClipboard.
func NewLoggingClipboard(next pagecopy.Clipboard, logger *slog.Logger) *LoggingClipboard {
	return &LoggingClipboard{next: next, logger: logger}
}

// Copy logs the size and fingerprint of the payload and delegates.
func (c *LoggingClipboard) Copy(text string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("copy",
			"bytes", len(text),
			"hash", Fingerprint(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Copy(text)
}
