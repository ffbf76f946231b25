package scrape

import (
	"context"

	"github.com/fwojciec/pagecopy"
)

var _ pagecopy.Runner = (*Runner)(nil)

// Runner executes one action end to end. Each Run is independent; nothing
// is retried and no state is kept between runs.
type Runner struct {
	Actions   pagecopy.ActionRegistry
	Fetcher   pagecopy.Fetcher
	Clipboard pagecopy.Clipboard
}

// Run loads target, performs the named action on it and publishes the
// payload. The returned report is never nil.
//
// A clipboard failure is reported with status ECLIPBOARD while the report
// still carries the extracted payload.
func (r *Runner) Run(ctx context.Context, name string, target string) *pagecopy.Report {
	action := r.Actions.Get(name)
	if action == nil {
		return pagecopy.NewErrorReport(name, target, pagecopy.Errorf(pagecopy.EINVALID, "unknown action %q", name))
	}

	html, err := r.Fetcher.Fetch(ctx, target)
	if err != nil {
		return pagecopy.NewErrorReport(name, target, err)
	}

	payload, err := perform(action, html)
	if err != nil {
		return pagecopy.NewErrorReport(name, target, err)
	}

	report := &pagecopy.Report{
		Action:  name,
		Target:  target,
		Count:   payload.Count,
		Payload: payload,
	}

	if err := r.Clipboard.Copy(payload.Text); err != nil {
		report.Status = pagecopy.ECLIPBOARD
		report.Message = pagecopy.ErrorMessage(err)
		return report
	}

	report.Status = pagecopy.StatusSuccess
	report.Message = "Copied " + payload.Summary()
	return report
}

// perform runs action, converting a panic into an EINTERNAL error so a
// single broken page never takes down the host.
func perform(action pagecopy.Action, html string) (payload *pagecopy.Payload, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload = nil
			err = pagecopy.Errorf(pagecopy.EINTERNAL, "%s action failed: %v", action.Name(), r)
		}
	}()

	payload, err = action.Perform(html)
	if err == nil && payload == nil {
		err = pagecopy.Errorf(pagecopy.EINTERNAL, "%s action returned no payload", action.Name())
	}
	return payload, err
}
