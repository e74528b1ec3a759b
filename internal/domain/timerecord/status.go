package timerecord

import (
	"time"
)

type Status string

const (
	StatusDelivered     Status = "delivered"
	StatusHalfDelivered Status = "half-delivered"
	StatusOwing         Status = "owing"
	StatusReleased      Status = "released"
	StatusIncomplete    Status = "incomplete"
)

// Statuses lists every known status in the fixed presentation order used by
// the panel sidebar and the monthly statistics.
var Statuses = []Status{
	StatusDelivered,
	StatusHalfDelivered,
	StatusOwing,
	StatusReleased,
	StatusIncomplete,
}

type Color string

// ColorUnknown decorates any status outside the known set. It is never part
// of the status table, so it can never match a statistics bucket.
const ColorUnknown Color = "#D1D5DB"

var statusColors = map[Status]Color{
	StatusDelivered:     "#10B981",
	StatusHalfDelivered: "#F59E0B",
	StatusOwing:         "#EF4444",
	StatusReleased:      "#3B82F6",
	StatusIncomplete:    "#6B7280",
}

var colorStatuses = func() map[Color]Status {
	m := make(map[Color]Status, len(statusColors))
	for _, s := range Statuses {
		c, ok := statusColors[s]
		if !ok {
			panic("timerecord: status without a color: " + string(s))
		}
		if _, dup := m[c]; dup {
			panic("timerecord: color mapped to two statuses: " + string(c))
		}
		m[c] = s
	}
	return m
}()

// Valid reports whether s belongs to the closed status set.
func (s Status) Valid() bool {
	_, ok := statusColors[s]
	return ok
}

// ColorOf returns the display color for a status. Unknown statuses get the
// ColorUnknown sentinel instead of an error.
func ColorOf(s Status) Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return ColorUnknown
}

// StatusOf is the reverse lookup over the same table.
func StatusOf(c Color) (Status, bool) {
	s, ok := colorStatuses[c]
	return s, ok
}

// IsWorkingDay reports whether t falls on a weekday. Saturdays and Sundays
// never carry a status and never count in monthly statistics.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

const dateKeyLayout = "2006-01-02"

// DateKey normalizes t to calendar-day granularity. Time-of-day is discarded
// before any comparison or storage.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD date-key back into a start-of-day time.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(dateKeyLayout, key)
}
