package employee

import (
	"time"
)

type Employee struct {
	ID        string
	FullName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
