package core

import "errors"

// ActionError is a client-correctable precondition failure from the
// attendance state machine. Code is stable for programmatic handling,
// Message is safe to show to the end user.
type ActionError struct {
	Code    string
	Message string
}

func (e *ActionError) Error() string {
	return e.Message
}

var (
	ErrAlreadyCheckedIn      = &ActionError{Code: "already_checked_in", Message: "Already checked in today"}
	ErrNotCheckedIn          = &ActionError{Code: "not_checked_in", Message: "Please check in first"}
	ErrAlreadyCheckedOut     = &ActionError{Code: "already_checked_out", Message: "Already checked out today"}
	ErrBreakInProgress       = &ActionError{Code: "break_in_progress", Message: "Please complete break first"}
	ErrBreakAlreadyStarted   = &ActionError{Code: "break_already_started", Message: "Break already started"}
	ErrBreakAlreadyUsed      = &ActionError{Code: "break_already_used", Message: "Only one break allowed per day"}
	ErrBreakNotStarted       = &ActionError{Code: "break_not_started", Message: "Break not started"}
	ErrBreakAlreadyCompleted = &ActionError{Code: "break_already_completed", Message: "Break already completed"}
	ErrUnknownAction         = &ActionError{Code: "unknown_action", Message: "Unknown attendance action"}
)

// ErrConflict is returned by stores when a concurrent writer already
// inserted a record for the same (employee, date). The caller may retry
// the whole apply sequence.
var ErrConflict = errors.New("attendance record already exists for this employee and date")

// ErrNotFound is returned by stores when no record matches the key.
var ErrNotFound = errors.New("attendance record not found")

// AsActionError unwraps err into an ActionError if it is one.
func AsActionError(err error) (*ActionError, bool) {
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
