package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagecopy"
)

// Ensure LoggingAction implements pagecopy.Action.
var _ pagecopy.Action = (*LoggingAction)(nil)

// LoggingAction wraps an Action with logging.
type LoggingAction struct {
	next   pagecopy.Action
	logger *slog.Logger
}

// NewLoggingAction creates a new LoggingAction.
func NewLoggingAction(next pagecopy.Action, logger *slog.Logger) *LoggingAction {
	return &LoggingAction{next: next, logger: logger}
}

// Name delegates to the wrapped action.
func (a *LoggingAction) Name() string {
	return a.next.Name()
}

// Perform logs the extraction outcome and delegates to the wrapped action.
func (a *LoggingAction) Perform(html string) (payload *pagecopy.Payload, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"action", a.next.Name(),
			"html_bytes", len(html),
			"duration", time.Since(begin),
		}
		if payload != nil {
			attrs = append(attrs,
				"format", payload.Format,
				"count", payload.Count,
				"hash", Fingerprint(payload.Text),
			)
		}
		if err != nil {
			attrs = append(attrs, "code", pagecopy.ErrorCode(err), "err", err)
		}
		a.logger.Info("perform", attrs...)
	}(time.Now())
	return a.next.Perform(html)
}
