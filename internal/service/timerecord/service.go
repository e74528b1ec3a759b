package timerecord

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/employee"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/timerecord"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/sse"
)

// TimeRecordServiceImpl reconciles status assignments into insert-or-update
// decisions and keeps the in-memory calendar consistent with the store.
type TimeRecordServiceImpl struct {
	records   timerecord.Repository
	employees employee.Repository
	hub       *sse.Hub
	cal       calendar
}

func NewTimeRecordService(records timerecord.Repository, employees employee.Repository, hub *sse.Hub) timerecord.Service {
	return &TimeRecordServiceImpl{
		records:   records,
		employees: employees,
		hub:       hub,
	}
}

// Select implements timerecord.Service.
func (s *TimeRecordServiceImpl) Select(ctx context.Context, employeeID string) (timerecord.CalendarResponse, error) {
	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return timerecord.CalendarResponse{}, err
	}

	generation := s.cal.selectEmployee(employeeID)

	records, err := s.records.ListByEmployee(ctx, employeeID)
	if err != nil {
		return timerecord.CalendarResponse{}, fmt.Errorf("failed to load records for employee: %w", err)
	}

	// A stale load is not installed, but the response still reflects what the
	// store returned for this request.
	s.cal.install(employeeID, generation, records)

	return timerecord.CalendarResponse{
		EmployeeID: employeeID,
		Marks:      buildMarks(records),
	}, nil
}

// ResolveColor implements timerecord.Service.
func (s *TimeRecordServiceImpl) ResolveColor(employeeID string, date time.Time) (timerecord.Color, bool) {
	return s.cal.color(employeeID, date)
}

// Invalidate implements timerecord.Service.
func (s *TimeRecordServiceImpl) Invalidate(employeeID string) {
	s.cal.invalidate(employeeID)
}

// SetStatus implements timerecord.Service. It is the single mutation entry
// point for attendance data; the one-record-per-day invariant is enforced
// here and backed by the store's unique index.
func (s *TimeRecordServiceImpl) SetStatus(ctx context.Context, req timerecord.SetStatusRequest) (timerecord.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return timerecord.RecordResponse{}, err
	}

	date, err := timerecord.ParseDateKey(req.Date)
	if err != nil {
		return timerecord.RecordResponse{}, timerecord.ErrInvalidDate
	}
	status := timerecord.Status(req.Status)

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return timerecord.RecordResponse{}, err
	}

	result, err := s.upsert(ctx, req.EmployeeID, date, status)
	if err != nil {
		return timerecord.RecordResponse{}, err
	}

	s.cal.put(result)

	resp := timerecord.NewRecordResponse(result)
	s.hub.Publish(sse.Event{Event: sse.EventRecordsChanged, Data: resp})

	return resp, nil
}

// upsert resolves one status assignment into an insert or an update.
func (s *TimeRecordServiceImpl) upsert(ctx context.Context, employeeID string, date time.Time, status timerecord.Status) (timerecord.TimeRecord, error) {
	existing, err := s.records.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return timerecord.TimeRecord{}, err
	}

	if existing != nil {
		return s.update(ctx, employeeID, existing.ID, status)
	}

	created, err := s.records.Create(ctx, timerecord.TimeRecord{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	})
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, timerecord.ErrDuplicateRecord) {
		return timerecord.TimeRecord{}, err
	}

	// A concurrent writer beat the insert; recover by updating the row it
	// created. A second conflict is a genuine race and is surfaced.
	existing, lookupErr := s.records.GetByEmployeeAndDate(ctx, employeeID, date)
	if lookupErr != nil {
		return timerecord.TimeRecord{}, lookupErr
	}
	if existing == nil {
		return timerecord.TimeRecord{}, err
	}
	return s.update(ctx, employeeID, existing.ID, status)
}

func (s *TimeRecordServiceImpl) update(ctx context.Context, employeeID, id string, status timerecord.Status) (timerecord.TimeRecord, error) {
	updated, err := s.records.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, timerecord.ErrRecordNotFound) {
			// The target vanished underneath us, likely a concurrent employee
			// deletion. The cached mapping can no longer be trusted.
			s.cal.invalidate(employeeID)
		}
		return timerecord.TimeRecord{}, err
	}
	return updated, nil
}

func buildMarks(records []timerecord.TimeRecord) []timerecord.CalendarMark {
	marks := make([]timerecord.CalendarMark, 0, len(records))
	for _, rec := range records {
		marks = append(marks, timerecord.CalendarMark{
			Date:   rec.Key(),
			Status: string(rec.Status),
			Color:  string(timerecord.ColorOf(rec.Status)),
		})
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].Date < marks[j].Date })
	return marks
}
