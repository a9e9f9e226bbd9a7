package core

import (
	"fmt"
	"time"
)

// Config carries the office parameters the derivation rules depend on.
// It is passed explicitly so the rules stay pure and testable with
// arbitrary settings.
type Config struct {
	// OfficeStart is the official start of the working day, "15:04" or
	// "15:04:05", interpreted in Location.
	OfficeStart string

	// GraceMinutes is the window after OfficeStart during which a
	// check-in is tagged grace rather than late.
	GraceMinutes int

	// MaxBreakMinutes is the break length above which a completed break
	// is flagged in reports. It never blocks a breakout.
	MaxBreakMinutes int

	// Location is the office timezone. Zone-less client timestamps are
	// assumed to be in it.
	Location *time.Location
}

// OfficeInstant returns OfficeStart on the calendar day of t, in the
// configured location.
func (c Config) OfficeInstant(t time.Time) (time.Time, error) {
	local := t.In(c.Location)
	base := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.Location)
	instant, err := ParseTimeOnDate(base, c.OfficeStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid office start time %s: %w", c.OfficeStart, err)
	}
	return instant, nil
}

func (c Config) GracePeriod() time.Duration {
	return time.Duration(c.GraceMinutes) * time.Minute
}

func (c Config) MaxBreak() time.Duration {
	return time.Duration(c.MaxBreakMinutes) * time.Minute
}

// ParseTimeOnDate combines a base date with a time string (e.g. "09:00").
func ParseTimeOnDate(baseDate time.Time, timeStr string) (time.Time, error) {
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		t, err = time.Parse("15:04:05", timeStr)
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(), t.Hour(), t.Minute(), t.Second(), 0, baseDate.Location()), nil
}
