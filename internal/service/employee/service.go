package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/employee"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/timerecord"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/sse"
)

const defaultPageSize = 10

// CalendarInvalidator drops the cached calendar view of one employee. The
// deletion cascade calls it so a removed employee cannot keep resolving
// colors from a mapping built before the removal.
type CalendarInvalidator interface {
	Invalidate(employeeID string)
}

type EmployeeServiceImpl struct {
	employees employee.Repository
	records   timerecord.Repository
	calendars CalendarInvalidator
	hub       *sse.Hub
}

func NewEmployeeService(employees employee.Repository, records timerecord.Repository, calendars CalendarInvalidator, hub *sse.Hub) employee.Service {
	return &EmployeeServiceImpl{
		employees: employees,
		records:   records,
		calendars: calendars,
		hub:       hub,
	}
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, page, limit int) (employee.ListEmployeeResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	employees, total, err := s.employees.List(ctx, page, limit)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := employee.ListEmployeeResponse{
		Employees:  make([]employee.EmployeeResponse, 0, len(employees)),
		TotalItems: total,
		Page:       page,
		Limit:      limit,
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, employee.NewEmployeeResponse(emp))
	}

	return resp, nil
}

// FindByName implements employee.Service.
func (s *EmployeeServiceImpl) FindByName(ctx context.Context, name string) (employee.EmployeeResponse, error) {
	found, err := s.employees.GetByName(ctx, name)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if found == nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return employee.NewEmployeeResponse(*found), nil
}

// Create implements employee.Service. Names are stored trimmed and
// uppercased; uniqueness is case-insensitive.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	name := req.NormalizedName()

	existing, err := s.employees.GetByName(ctx, name)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrNameExists
	}

	created, err := s.employees.Create(ctx, employee.Employee{FullName: name})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.hub.Publish(sse.Event{Event: sse.EventEmployeesChanged, Data: created.ID})

	return employee.NewEmployeeResponse(created), nil
}

// Delete implements employee.Service. Records go first, then the identity,
// so a partial failure leaves at worst a recordless identity, never records
// pointing at a missing employee. The two store calls stay separate so the
// partial-failure window stays observable and the caller can be told to
// retry.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employees.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.records.DeleteByEmployee(ctx, id); err != nil {
		return fmt.Errorf("failed to delete records during cascade: %w", err)
	}

	// The records are gone from the store; a calendar built before this
	// point would keep resolving colors for them.
	s.calendars.Invalidate(id)

	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Someone else finished the job; the cascade converged anyway.
			s.hub.Publish(sse.Event{Event: sse.EventEmployeesChanged, Data: id})
			return nil
		}
		slog.Error("employee deletion left orphaned state", "employee_id", id, "error", err)
		return fmt.Errorf("%w: %v", employee.ErrPartialDeletion, err)
	}

	s.hub.Publish(sse.Event{Event: sse.EventEmployeesChanged, Data: id})
	return nil
}
