package core

import (
	"context"
	"time"
)

// Filters narrows a record query. Zero-value fields apply no predicate.
type Filters struct {
	EmployeeID string
	// Date is the raw client input; a malformed date means no date
	// filter, not an error.
	Date   string
	Status string
}

// DateFilter normalizes the date filter input. ok is false when the
// filter is absent or unparseable, in which case it must be ignored.
func (f Filters) DateFilter() (string, bool) {
	if f.Date == "" {
		return "", false
	}
	t, err := time.Parse(DateLayout, f.Date)
	if err != nil {
		return "", false
	}
	return t.Format(DateLayout), true
}

// QueryOrder selects the presentation ordering of a record query.
type QueryOrder int

const (
	// OrderNewestFirst is date descending, then check-in descending with
	// missing check-ins last.
	OrderNewestFirst QueryOrder = iota
	// OrderExport is date descending, then employee name ascending.
	OrderExport
)

// RecordStore is the persistence collaborator the state machine needs.
// Implementations must enforce (employee_id, date) uniqueness and report
// a racing insert as ErrConflict.
type RecordStore interface {
	// GetRecord returns the record for the natural key, or ErrNotFound.
	GetRecord(ctx context.Context, employeeID, date string) (*AttendanceRecord, error)
	CreateRecord(ctx context.Context, r *AttendanceRecord) error
	UpdateRecord(ctx context.Context, r *AttendanceRecord) error
	QueryRecords(ctx context.Context, f Filters, order QueryOrder) ([]AttendanceRecord, error)
}
