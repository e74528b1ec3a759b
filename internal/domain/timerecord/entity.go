package timerecord

import (
	"time"
)

type TimeRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Key returns the date-key the record is indexed under in the calendar cache.
func (r TimeRecord) Key() string {
	return DateKey(r.Date)
}
