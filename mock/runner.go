package mock

import (
	"context"

	"github.com/fwojciec/pagecopy"
)

var _ pagecopy.Runner = (*Runner)(nil)

// Runner is a mock implementation of pagecopy.Runner.
type Runner struct {
	RunFn func(ctx context.Context, action, target string) *pagecopy.Report
}

func (r *Runner) Run(ctx context.Context, action, target string) *pagecopy.Report {
	return r.RunFn(ctx, action, target)
}
