package core

import "time"

// DateLayout is the canonical format for the attendance day key.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusOnTime Status = "on_time"
	StatusGrace  Status = "grace"
	StatusLate   Status = "late"
)

// Label returns the human-readable status text used in reports.
func (s Status) Label() string {
	switch s {
	case StatusOnTime:
		return "On Time"
	case StatusGrace:
		return "Grace Period"
	case StatusLate:
		return "Late"
	}
	return string(s)
}

type Employee struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(100)" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Email     *string   `gorm:"column:email;type:varchar(254)" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
}

func (Employee) TableName() string {
	return "employees"
}

// AttendanceRecord is one row per employee per calendar day. All four
// punch timestamps are optional; Status and BreakDuration are derived
// from them and never set by callers directly.
type AttendanceRecord struct {
	ID         string `gorm:"primaryKey;column:id;type:varchar(100)" json:"id"`
	EmployeeID string `gorm:"column:employee_id;type:varchar(100);not null;uniqueIndex:idx_employee_date,priority:1" json:"employeeId"`

	// EmployeeName is the name supplied with the first action of the day.
	// It is a snapshot, never re-synced against the employees table, so
	// historical reports keep the name that was current at the time.
	EmployeeName string `gorm:"column:employee_name;type:varchar(200);not null" json:"employeeName"`

	Date         string     `gorm:"column:date;type:varchar(10);not null;uniqueIndex:idx_employee_date,priority:2;index:idx_date_status,priority:1" json:"date"`
	CheckInTime  *time.Time `gorm:"column:check_in_time;type:datetime" json:"checkInTime"`
	CheckOutTime *time.Time `gorm:"column:check_out_time;type:datetime" json:"checkOutTime"`
	BreakInTime  *time.Time `gorm:"column:break_in_time;type:datetime" json:"breakInTime"`
	BreakOutTime *time.Time `gorm:"column:break_out_time;type:datetime" json:"breakOutTime"`

	Status Status `gorm:"column:status;type:varchar(20);not null;default:on_time;index:idx_date_status,priority:2" json:"status"`

	// BreakDuration is whole seconds between break-in and break-out,
	// present only once both are recorded.
	BreakDuration *int `gorm:"column:break_duration" json:"breakDuration"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
