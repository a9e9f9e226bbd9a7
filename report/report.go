// Package report renders attendance records into a color-coded xlsx
// workbook. It consumes already-persisted records and only formats them.
package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"attendly.com/attendly/core"
)

const SheetName = "Attendance Report"

var headers = []string{
	"Employee Name", "Employee ID", "Date", "Check-In", "Check-Out",
	"Break Duration", "Status",
}

const (
	statusColumn = 7
	breakColumn  = 6
)

// Render builds the workbook: one header row plus one row per record,
// the status cell colored per status class and the break-duration cell
// flagged when the break exceeds the configured maximum.
func Render(records []core.AttendanceRecord, cfg core.Config) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return nil, err
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(SheetName, cell, cell, styles.header); err != nil {
			return nil, err
		}
		widths[i] = len(h)
	}

	for i, record := range records {
		row := i + 2
		values := []string{
			record.EmployeeName,
			record.EmployeeID,
			record.Date,
			FormatClock(record.CheckInTime, cfg.Location),
			FormatClock(record.CheckOutTime, cfg.Location),
			FormatBreakDuration(record.BreakDuration),
			record.Status.Label(),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, err
			}
			if len(value) > widths[col] {
				widths[col] = len(value)
			}
		}

		if styleID, ok := styles.forStatus(record.Status); ok {
			cell, err := excelize.CoordinatesToCellName(statusColumn, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(SheetName, cell, cell, styleID); err != nil {
				return nil, err
			}
		}

		if Overlong(record.BreakDuration, cfg) {
			cell, err := excelize.CoordinatesToCellName(breakColumn, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(SheetName, cell, cell, styles.overlongBreak); err != nil {
				return nil, err
			}
		}
	}

	for i, width := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		w := float64(width + 2)
		if w > 50 {
			w = 50
		}
		if err := f.SetColWidth(SheetName, name, name, w); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// FormatClock renders a punch timestamp as office-local HH:MM:SS, or the
// "-" placeholder when absent.
func FormatClock(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format("15:04:05")
}

// FormatBreakDuration renders whole seconds as "{minutes}m {seconds}s",
// or the "-" placeholder when absent.
func FormatBreakDuration(seconds *int) string {
	if seconds == nil {
		return "-"
	}
	return fmt.Sprintf("%dm %ds", *seconds/60, *seconds%60)
}

// Overlong reports whether a completed break exceeds the configured
// maximum. It is a reporting flag only; the record persisted regardless.
func Overlong(breakSeconds *int, cfg core.Config) bool {
	if breakSeconds == nil {
		return false
	}
	return float64(*breakSeconds) > cfg.MaxBreak().Seconds()
}
