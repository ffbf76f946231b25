package pagecopy

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The extraction codes double as the status strings reported to the user,
// so they read like statuses rather than like Go identifiers.
const (
	ENOCONTENT = "no-content"
	ENOTABLE   = "no-table"
	ENOROWS    = "no-rows"
	ENODATA    = "no-data"
	ECLIPBOARD = "clipboard"
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the code and message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagecopy error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return the underlying error text so that
// unexpected failures still carry their cause to the user.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
