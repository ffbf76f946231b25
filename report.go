package pagecopy

import "fmt"

// StatusSuccess is the report status of a completed run. Failed runs carry
// the error code of the failure (ENOCONTENT, ENOTABLE, ECLIPBOARD, ...).
const StatusSuccess = "success"

// Report is the terminal status of one action invocation.
type Report struct {
	Action string
	Target string

	// Status is StatusSuccess or an error code.
	Status  string
	Message string
	Count   int

	// Payload is set whenever extraction succeeded, even when publishing
	// the payload to the clipboard failed.
	Payload *Payload
}

// NewErrorReport builds a failed report from err.
func NewErrorReport(action, target string, err error) *Report {
	return &Report{
		Action:  action,
		Target:  target,
		Status:  ErrorCode(err),
		Message: ErrorMessage(err),
	}
}

// OK returns true if the run succeeded.
func (r *Report) OK() bool {
	return r.Status == StatusSuccess
}

// Err returns nil for a successful report, otherwise an Error carrying the
// report's status and message.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return Errorf(r.Status, "%s", r.Message)
}

// String formats the report as a single status line.
func (r *Report) String() string {
	return fmt.Sprintf("%s: %s", r.Status, r.Message)
}
