package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagecopy"
	"github.com/fwojciec/pagecopy/mock"
	pcslog "github.com/fwojciec/pagecopy/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("logs successful run at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Runner{
			RunFn: func(ctx context.Context, action, target string) *pagecopy.Report {
				return &pagecopy.Report{Action: action, Target: target, Status: pagecopy.StatusSuccess, Count: 3}
			},
		}

		runner := pcslog.NewLoggingRunner(inner, logger)
		report := runner.Run(context.Background(), "keywords", "page.html")

		assert.True(t, report.OK())
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "action=keywords")
		assert.Contains(t, output, "target=page.html")
		assert.Contains(t, output, "status=success")
		assert.Contains(t, output, "count=3")
	})

	t.Run("logs failed run at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Runner{
			RunFn: func(ctx context.Context, action, target string) *pagecopy.Report {
				return &pagecopy.Report{Action: action, Target: target, Status: pagecopy.ENOROWS}
			},
		}

		runner := pcslog.NewLoggingRunner(inner, logger)
		report := runner.Run(context.Background(), "keywords", "page.html")

		assert.False(t, report.OK())
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "status=no-rows")
	})
}
