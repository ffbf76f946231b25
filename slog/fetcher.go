package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecopy"
)

// Ensure LoggingFetcher implements pagecopy.Fetcher.
var _ pagecopy.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pagecopy.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagecopy.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the target being loaded and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, target string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"target", target,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", pagecopy.ErrorCode(err), "err", err)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, target)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
