package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecopy"
)

// Ensure LoggingRunner implements pagecopy.Runner.
var _ pagecopy.Runner = (*LoggingRunner)(nil)

// LoggingRunner wraps a Runner and logs the final report of every run.
type LoggingRunner struct {
	next   pagecopy.Runner
	logger *slog.Logger
}

// NewLoggingRunner creates a new LoggingRunner.
func NewLoggingRunner(next pagecopy.Runner, logger *slog.Logger) *LoggingRunner {
	return &LoggingRunner{next: next, logger: logger}
}

// Run delegates to the wrapped runner and logs the report.
func (r *LoggingRunner) Run(ctx context.Context, action, target string) *pagecopy.Report {
	begin := time.Now()
	report := r.next.Run(ctx, action, target)

	level := slog.LevelInfo
	if !report.OK() {
		level = slog.LevelWarn
	}
	r.logger.Log(ctx, level, "run",
		"action", action,
		"target", target,
		"status", report.Status,
		"count", report.Count,
		"duration", time.Since(begin),
	)
	return report
}
