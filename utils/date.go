package utils

import (
	"fmt"
	"time"
)

// ParseTimestamp accepts the timestamp representations clients send with
// an attendance action. Zone-aware inputs keep their instant; zone-less
// inputs are assumed to be in loc, the configured office timezone.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("failed to parse timestamp: %v", s)
}

func Ptr[T any](v T) *T {
	return &v
}
