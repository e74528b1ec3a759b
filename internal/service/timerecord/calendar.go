package timerecord

import (
	"sync"
	"time"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/timerecord"
)

// calendar is the in-memory date-indexed view of the active employee's
// records. It is the authoritative read side for ResolveColor. Loads are
// tagged with a generation so the result of a load issued before an employee
// switch can be recognized and discarded.
type calendar struct {
	mu         sync.RWMutex
	employeeID string
	generation uint64
	byDate     map[string]timerecord.TimeRecord
}

// selectEmployee makes employeeID the active employee and returns the
// generation the caller must present when installing the load result.
func (c *calendar) selectEmployee(employeeID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.employeeID = employeeID
	c.byDate = nil
	return c.generation
}

// install replaces the mapping with the loaded record set. A stale load, one
// whose generation or employee no longer matches the active selection, is
// rejected and the mapping is left untouched.
func (c *calendar) install(employeeID string, generation uint64, records []timerecord.TimeRecord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation || employeeID != c.employeeID {
		return false
	}

	byDate := make(map[string]timerecord.TimeRecord, len(records))
	for _, rec := range records {
		byDate[rec.Key()] = rec
	}
	c.byDate = byDate
	return true
}

// put replaces the single affected entry after a successful upsert. Writes
// for an employee other than the active one are ignored; their mapping is
// rebuilt wholesale on the next switch anyway.
func (c *calendar) put(rec timerecord.TimeRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if rec.EmployeeID != c.employeeID || c.byDate == nil {
		return
	}
	c.byDate[rec.Key()] = rec
}

// color resolves the display color for one day of the active employee.
func (c *calendar) color(employeeID string, date time.Time) (timerecord.Color, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if employeeID != c.employeeID {
		return "", false
	}
	rec, ok := c.byDate[timerecord.DateKey(date)]
	if !ok {
		return "", false
	}
	return timerecord.ColorOf(rec.Status), true
}

// invalidate drops the mapping so it can no longer serve stale reads. The
// next selectEmployee/install pair rebuilds it from the store.
func (c *calendar) invalidate(employeeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if employeeID != c.employeeID {
		return
	}
	c.byDate = nil
}
