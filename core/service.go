package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service applies attendance actions and answers queries. All mutations
// for one (employee, date) run under a per-key lock so the state machine
// preconditions are checked under mutual exclusion; different employees
// and different days never contend.
type Service struct {
	store RecordStore
	cfg   Config

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	now func() time.Time
}

func NewService(store RecordStore, cfg Config) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
		locks: make(map[string]*sync.Mutex),
		now:   time.Now,
	}
}

func (s *Service) Config() Config {
	return s.cfg
}

func (s *Service) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// ApplyAction runs the load-or-create / validate / mutate / persist
// sequence for one action. The record is created lazily on the first
// action of the day; every action other than checkin then fails with its
// "not started" error, leaving only the empty placeholder behind.
func (s *Service) ApplyAction(ctx context.Context, action Action, employeeID, employeeName string, ts time.Time) (*AttendanceRecord, error) {
	ts = ts.In(s.cfg.Location)
	date := ts.Format(DateLayout)

	key := employeeID + "|" + date
	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()

	record, err := s.store.GetRecord(ctx, employeeID, date)
	switch {
	case errors.Is(err, ErrNotFound):
		record = &AttendanceRecord{
			ID:           uuid.NewString(),
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Date:         date,
			Status:       StatusOnTime,
		}
		if err := s.store.CreateRecord(ctx, record); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	if err := Apply(record, action, ts, s.cfg); err != nil {
		return nil, err
	}

	if err := s.store.UpdateRecord(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Query returns records matching the filters, newest day first, latest
// check-in first within a day.
func (s *Service) Query(ctx context.Context, f Filters) ([]AttendanceRecord, error) {
	return s.store.QueryRecords(ctx, f, OrderNewestFirst)
}

// ExportRecords returns records in the report ordering: newest day
// first, employee name ascending within a day.
func (s *Service) ExportRecords(ctx context.Context, f Filters) ([]AttendanceRecord, error) {
	return s.store.QueryRecords(ctx, f, OrderExport)
}

// TodayStatus returns the employee's record for the current office-local
// day, or ErrNotFound when no action has been taken yet.
func (s *Service) TodayStatus(ctx context.Context, employeeID string) (*AttendanceRecord, error) {
	date := s.now().In(s.cfg.Location).Format(DateLayout)
	return s.store.GetRecord(ctx, employeeID, date)
}
