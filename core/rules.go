package core

import "time"

// DeriveStatus classifies a check-in against the configured office start
// and grace window. A nil check-in is on_time: it is the unset default,
// not a judgment. Boundaries are inclusive on the early side, so a punch
// at exactly office start is on_time and one at exactly grace end is
// grace.
func DeriveStatus(checkIn *time.Time, cfg Config) (Status, error) {
	if checkIn == nil {
		return StatusOnTime, nil
	}

	local := checkIn.In(cfg.Location)
	office, err := cfg.OfficeInstant(local)
	if err != nil {
		return StatusOnTime, err
	}
	graceEnd := office.Add(cfg.GracePeriod())

	switch {
	case !local.After(office):
		return StatusOnTime, nil
	case !local.After(graceEnd):
		return StatusGrace, nil
	}
	return StatusLate, nil
}

// DeriveBreakDuration returns the whole-second break length, or nil when
// either timestamp is missing. A break-out before break-in is a caller
// contract violation and yields nil rather than a negative duration.
func DeriveBreakDuration(breakIn, breakOut *time.Time) *int {
	if breakIn == nil || breakOut == nil {
		return nil
	}
	if breakOut.Before(*breakIn) {
		return nil
	}
	seconds := int(breakOut.Sub(*breakIn) / time.Second)
	return &seconds
}
