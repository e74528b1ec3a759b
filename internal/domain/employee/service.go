package employee

import (
	"context"
)

// Service defines directory operations over employee identities.
type Service interface {
	// List retrieves one page of the directory ordered by name.
	List(ctx context.Context, page, limit int) (ListEmployeeResponse, error)

	// FindByName resolves an employee by their normalized name.
	FindByName(ctx context.Context, name string) (EmployeeResponse, error)

	// Create registers a new employee after a case-insensitive uniqueness check.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes an employee and cascades deletion of their time records.
	Delete(ctx context.Context, id string) error
}
