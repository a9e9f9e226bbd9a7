package storage

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"attendly.com/attendly/core"
)

const mysqlDuplicateEntry = 1062

// Store persists employees and attendance records in mysql. It
// implements core.RecordStore; the unique index on (employee_id, date)
// backstops the service's per-key lock across processes.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetRecord(ctx context.Context, employeeID, date string) (*core.AttendanceRecord, error) {
	var record core.AttendanceRecord
	err := s.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Store) CreateRecord(ctx context.Context, record *core.AttendanceRecord) error {
	err := s.db.WithContext(ctx).Create(record).Error
	if isDuplicateEntry(err) {
		return core.ErrConflict
	}
	return err
}

func (s *Store) UpdateRecord(ctx context.Context, record *core.AttendanceRecord) error {
	return s.db.WithContext(ctx).Save(record).Error
}

// QueryRecords applies the exact-match filters and one of the two
// presentation orderings. Mysql sorts NULLs last under DESC, which is
// exactly the "missing check-ins last" requirement.
func (s *Store) QueryRecords(ctx context.Context, f core.Filters, order core.QueryOrder) ([]core.AttendanceRecord, error) {
	q := s.db.WithContext(ctx).Model(&core.AttendanceRecord{})

	if f.EmployeeID != "" {
		q = q.Where("employee_id = ?", f.EmployeeID)
	}
	if date, ok := f.DateFilter(); ok {
		q = q.Where("date = ?", date)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	switch order {
	case core.OrderExport:
		q = q.Order("date DESC").Order("employee_name ASC")
	default:
		q = q.Order("date DESC").Order("check_in_time DESC")
	}

	var records []core.AttendanceRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) ListEmployees(ctx context.Context) ([]core.Employee, error) {
	var employees []core.Employee
	if err := s.db.WithContext(ctx).Order("id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// UpsertEmployees bulk-inserts employees, updating existing rows on id
// conflict.
func (s *Store) UpsertEmployees(ctx context.Context, employees []core.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&employees).Error
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
