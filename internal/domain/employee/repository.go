package employee

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByName performs a case-insensitive exact match on the normalized
	// full name. Returns (nil, nil) when no employee carries the name.
	GetByName(ctx context.Context, fullName string) (*Employee, error)

	// List returns one page of employees ordered by name plus the total count.
	List(ctx context.Context, page, limit int) ([]Employee, int64, error)

	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// Delete removes the employee identity only. Callers must have removed the
	// employee's time records first; referential integrity is enforced by the
	// service, not the store.
	Delete(ctx context.Context, id string) error
}
