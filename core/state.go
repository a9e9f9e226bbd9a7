package core

import "time"

type Action string

const (
	ActionCheckIn  Action = "checkin"
	ActionBreakIn  Action = "breakin"
	ActionBreakOut Action = "breakout"
	ActionCheckOut Action = "checkout"
)

// ParseAction validates an action string from a client payload.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionCheckIn, ActionBreakIn, ActionBreakOut, ActionCheckOut:
		return Action(s), nil
	}
	return "", ErrUnknownAction
}

// DayState is the explicit tag for which phase a day's record is in.
// It is computed from timestamp presence at load time; the five values
// are the states reachable from an empty day.
type DayState int

const (
	StateEmpty DayState = iota
	StateCheckedIn
	StateOnBreak
	StateBreakDone
	StateCheckedOut
)

func (s DayState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateCheckedIn:
		return "checked_in"
	case StateOnBreak:
		return "on_break"
	case StateBreakDone:
		return "break_done"
	case StateCheckedOut:
		return "checked_out"
	}
	return "unknown"
}

// StateOf derives the day state from the record's timestamps. Check-out
// takes precedence over the break phase: once check-out is set the day
// is closed.
func StateOf(r *AttendanceRecord) DayState {
	switch {
	case r.CheckInTime == nil:
		return StateEmpty
	case r.CheckOutTime != nil:
		return StateCheckedOut
	case r.BreakInTime != nil && r.BreakOutTime == nil:
		return StateOnBreak
	case r.BreakOutTime != nil:
		return StateBreakDone
	}
	return StateCheckedIn
}

// Apply runs one action against the record, mutating it in place on
// success and recomputing the derived fields. On a precondition failure
// it returns an ActionError and leaves the record untouched. The caller
// must hold the per-(employee, date) lock for the whole load-apply-persist
// sequence.
func Apply(r *AttendanceRecord, action Action, ts time.Time, cfg Config) error {
	state := StateOf(r)

	switch action {
	case ActionCheckIn:
		if state != StateEmpty {
			return ErrAlreadyCheckedIn
		}
		r.CheckInTime = &ts
		status, err := DeriveStatus(r.CheckInTime, cfg)
		if err != nil {
			r.CheckInTime = nil
			return err
		}
		r.Status = status
		return nil

	case ActionCheckOut:
		switch state {
		case StateEmpty:
			return ErrNotCheckedIn
		case StateCheckedOut:
			return ErrAlreadyCheckedOut
		case StateOnBreak:
			return ErrBreakInProgress
		}
		r.CheckOutTime = &ts
		return nil

	case ActionBreakIn:
		switch state {
		case StateEmpty:
			return ErrNotCheckedIn
		case StateOnBreak:
			return ErrBreakAlreadyStarted
		case StateBreakDone:
			return ErrBreakAlreadyUsed
		case StateCheckedOut:
			// Check-out does not consume the break allowance, so a
			// closed day still honors the break preconditions.
			if r.BreakInTime != nil && r.BreakOutTime == nil {
				return ErrBreakAlreadyStarted
			}
			if r.BreakOutTime != nil {
				return ErrBreakAlreadyUsed
			}
		}
		r.BreakInTime = &ts
		return nil

	case ActionBreakOut:
		if r.BreakInTime == nil {
			return ErrBreakNotStarted
		}
		if r.BreakOutTime != nil {
			return ErrBreakAlreadyCompleted
		}
		r.BreakOutTime = &ts
		// An over-length break still persists; flagging it is a
		// reporting concern, not a validation failure.
		r.BreakDuration = DeriveBreakDuration(r.BreakInTime, r.BreakOutTime)
		return nil
	}

	return ErrUnknownAction
}
