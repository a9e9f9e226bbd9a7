package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateOf(t *testing.T) {
	at := func(h, m int) *time.Time {
		ts := time.Date(2024, 3, 11, h, m, 0, 0, time.UTC)
		return &ts
	}

	tests := []struct {
		name     string
		record   AttendanceRecord
		expected DayState
	}{
		{
			name:     "fresh record",
			record:   AttendanceRecord{},
			expected: StateEmpty,
		},
		{
			name:     "checked in only",
			record:   AttendanceRecord{CheckInTime: at(9, 0)},
			expected: StateCheckedIn,
		},
		{
			name:     "on break",
			record:   AttendanceRecord{CheckInTime: at(9, 0), BreakInTime: at(12, 0)},
			expected: StateOnBreak,
		},
		{
			name:     "break done",
			record:   AttendanceRecord{CheckInTime: at(9, 0), BreakInTime: at(12, 0), BreakOutTime: at(12, 30)},
			expected: StateBreakDone,
		},
		{
			name:     "checked out without break",
			record:   AttendanceRecord{CheckInTime: at(9, 0), CheckOutTime: at(17, 0)},
			expected: StateCheckedOut,
		},
		{
			name: "checked out after break",
			record: AttendanceRecord{
				CheckInTime: at(9, 0), BreakInTime: at(12, 0),
				BreakOutTime: at(12, 30), CheckOutTime: at(17, 0),
			},
			expected: StateCheckedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StateOf(&tt.record))
		})
	}
}

func TestApplyFullDay(t *testing.T) {
	cfg := testConfig(t)
	record := AttendanceRecord{}

	checkIn := time.Date(2024, 3, 11, 8, 55, 0, 0, time.UTC)
	breakIn := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	breakOut := time.Date(2024, 3, 11, 12, 32, 45, 0, time.UTC)
	checkOut := time.Date(2024, 3, 11, 17, 5, 0, 0, time.UTC)

	require.NoError(t, Apply(&record, ActionCheckIn, checkIn, cfg))
	assert.Equal(t, StatusOnTime, record.Status)

	require.NoError(t, Apply(&record, ActionBreakIn, breakIn, cfg))
	require.NoError(t, Apply(&record, ActionBreakOut, breakOut, cfg))
	require.NoError(t, Apply(&record, ActionCheckOut, checkOut, cfg))

	require.NotNil(t, record.CheckInTime)
	require.NotNil(t, record.BreakInTime)
	require.NotNil(t, record.BreakOutTime)
	require.NotNil(t, record.CheckOutTime)
	require.NotNil(t, record.BreakDuration)
	assert.Equal(t, 1965, *record.BreakDuration)
	assert.Equal(t, StateCheckedOut, StateOf(&record))
}

func TestApplyPreconditions(t *testing.T) {
	cfg := testConfig(t)
	ts := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)

	checkedIn := func() *AttendanceRecord {
		r := &AttendanceRecord{}
		require.NoError(t, Apply(r, ActionCheckIn, ts, cfg))
		return r
	}
	onBreak := func() *AttendanceRecord {
		r := checkedIn()
		require.NoError(t, Apply(r, ActionBreakIn, ts.Add(time.Hour), cfg))
		return r
	}
	breakDone := func() *AttendanceRecord {
		r := onBreak()
		require.NoError(t, Apply(r, ActionBreakOut, ts.Add(90*time.Minute), cfg))
		return r
	}
	checkedOut := func() *AttendanceRecord {
		r := checkedIn()
		require.NoError(t, Apply(r, ActionCheckOut, ts.Add(8*time.Hour), cfg))
		return r
	}

	tests := []struct {
		name     string
		record   *AttendanceRecord
		action   Action
		expected *ActionError
	}{
		{"checkin twice", checkedIn(), ActionCheckIn, ErrAlreadyCheckedIn},
		{"checkin while on break", onBreak(), ActionCheckIn, ErrAlreadyCheckedIn},
		{"checkout on fresh record", &AttendanceRecord{}, ActionCheckOut, ErrNotCheckedIn},
		{"checkout twice", checkedOut(), ActionCheckOut, ErrAlreadyCheckedOut},
		{"checkout during break", onBreak(), ActionCheckOut, ErrBreakInProgress},
		{"breakin on fresh record", &AttendanceRecord{}, ActionBreakIn, ErrNotCheckedIn},
		{"breakin while on break", onBreak(), ActionBreakIn, ErrBreakAlreadyStarted},
		{"second break", breakDone(), ActionBreakIn, ErrBreakAlreadyUsed},
		{"breakout on fresh record", &AttendanceRecord{}, ActionBreakOut, ErrBreakNotStarted},
		{"breakout without breakin", checkedIn(), ActionBreakOut, ErrBreakNotStarted},
		{"breakout twice", breakDone(), ActionBreakOut, ErrBreakAlreadyCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := *tt.record
			err := Apply(tt.record, tt.action, ts.Add(10*time.Hour), cfg)
			require.Error(t, err)
			ae, ok := AsActionError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expected.Code, ae.Code)
			assert.Equal(t, before, *tt.record, "failed action must not mutate the record")
		})
	}
}

func TestApplyOverlongBreakStillSucceeds(t *testing.T) {
	cfg := testConfig(t) // 30 minute maximum
	record := AttendanceRecord{}
	checkIn := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	breakIn := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	breakOut := breakIn.Add(35 * time.Minute)

	require.NoError(t, Apply(&record, ActionCheckIn, checkIn, cfg))
	require.NoError(t, Apply(&record, ActionBreakIn, breakIn, cfg))
	require.NoError(t, Apply(&record, ActionBreakOut, breakOut, cfg))

	require.NotNil(t, record.BreakDuration)
	assert.Equal(t, 35*60, *record.BreakDuration)
}

func TestParseAction(t *testing.T) {
	for _, valid := range []string{"checkin", "breakin", "breakout", "checkout"} {
		action, err := ParseAction(valid)
		require.NoError(t, err)
		assert.Equal(t, Action(valid), action)
	}

	_, err := ParseAction("clockin")
	assert.ErrorIs(t, err, ErrUnknownAction)
}
