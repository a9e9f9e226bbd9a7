package report

import (
	"github.com/xuri/excelize/v2"

	"attendly.com/attendly/core"
)

// styleSet holds the workbook style ids: the header band, one highlight
// class per status, and the overlong-break flag.
type styleSet struct {
	header        int
	onTime        int
	grace         int
	late          int
	overlongBreak int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	header, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	onTime, err := fillStyle(f, "C6EFCE", "006100", false)
	if err != nil {
		return nil, err
	}
	grace, err := fillStyle(f, "FFEB9C", "9C6500", false)
	if err != nil {
		return nil, err
	}
	late, err := fillStyle(f, "FFC7CE", "9C0006", false)
	if err != nil {
		return nil, err
	}
	overlongBreak, err := fillStyle(f, "FFC7CE", "9C0006", true)
	if err != nil {
		return nil, err
	}

	return &styleSet{
		header:        header,
		onTime:        onTime,
		grace:         grace,
		late:          late,
		overlongBreak: overlongBreak,
	}, nil
}

func (s *styleSet) forStatus(status core.Status) (int, bool) {
	switch status {
	case core.StatusOnTime:
		return s.onTime, true
	case core.StatusGrace:
		return s.grace, true
	case core.StatusLate:
		return s.late, true
	}
	return 0, false
}

func fillStyle(f *excelize.File, fill, font string, bold bool) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
		Font: &excelize.Font{Color: font, Bold: bold},
	})
}
