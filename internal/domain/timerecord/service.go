package timerecord

import (
	"context"
	"time"
)

// Service defines the reconciliation logic over time records.
type Service interface {
	// Select switches the active employee, loads their records and returns
	// the resulting calendar marks.
	Select(ctx context.Context, employeeID string) (CalendarResponse, error)

	// ResolveColor answers which color, if any, decorates a day for the
	// currently active employee.
	ResolveColor(employeeID string, date time.Time) (Color, bool)

	// SetStatus is the single mutation entry point: insert-or-update the
	// record for (employee, date) and keep the calendar cache consistent.
	SetStatus(ctx context.Context, req SetStatusRequest) (RecordResponse, error)

	// Invalidate drops the cached calendar so the next access rebuilds it.
	Invalidate(employeeID string)
}
