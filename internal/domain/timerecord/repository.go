package timerecord

import (
	"context"
	"time"
)

// Repository defines data access methods for time records. The underlying
// store has no ordering guarantees; callers re-index results by date-key.
type Repository interface {
	// ListByEmployee retrieves every record belonging to one employee.
	ListByEmployee(ctx context.Context, employeeID string) ([]TimeRecord, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one day.
	// Returns (nil, nil) when no record exists, mirroring the existence check
	// the reconciler performs before every upsert.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*TimeRecord, error)

	// Create inserts a new record. Fails with ErrDuplicateRecord when a record
	// for the same (employee, date) already exists; the unique index backs the
	// check-then-act sequence against concurrent writers.
	Create(ctx context.Context, record TimeRecord) (TimeRecord, error)

	// UpdateStatus mutates the status of an existing record and bumps its
	// updated_at. Fails with ErrRecordNotFound when the id vanished.
	UpdateStatus(ctx context.Context, id string, status Status) (TimeRecord, error)

	// DeleteByEmployee removes all records of one employee. First half of the
	// cascading employee removal.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
