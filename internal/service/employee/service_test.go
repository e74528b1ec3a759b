package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/employee"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/timerecord"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/sse"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/validator"
	timerecordService "github.com/admffolador/painel-gta-helipa-valley1/internal/service/timerecord"
)

const testEmployeeID = "11111111-2222-4333-8444-555555555555"

type fakeEmployeeRepo struct {
	GetByIDFn   func(ctx context.Context, id string) (employee.Employee, error)
	GetByNameFn func(ctx context.Context, fullName string) (*employee.Employee, error)
	ListFn      func(ctx context.Context, page, limit int) ([]employee.Employee, int64, error)
	CreateFn    func(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error)
	DeleteFn    func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.GetByIDFn(ctx, id)
}

func (f *fakeEmployeeRepo) GetByName(ctx context.Context, fullName string) (*employee.Employee, error) {
	return f.GetByNameFn(ctx, fullName)
}

func (f *fakeEmployeeRepo) List(ctx context.Context, page, limit int) ([]employee.Employee, int64, error) {
	return f.ListFn(ctx, page, limit)
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return f.CreateFn(ctx, newEmployee)
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type fakeRecordRepo struct {
	ListByEmployeeFn   func(ctx context.Context, employeeID string) ([]timerecord.TimeRecord, error)
	DeleteByEmployeeFn func(ctx context.Context, employeeID string) error
}

func (f *fakeRecordRepo) ListByEmployee(ctx context.Context, employeeID string) ([]timerecord.TimeRecord, error) {
	return f.ListByEmployeeFn(ctx, employeeID)
}

func (f *fakeRecordRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timerecord.TimeRecord, error) {
	panic("not used")
}

func (f *fakeRecordRepo) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	panic("not used")
}

func (f *fakeRecordRepo) UpdateStatus(ctx context.Context, id string, status timerecord.Status) (timerecord.TimeRecord, error) {
	panic("not used")
}

func (f *fakeRecordRepo) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return f.DeleteByEmployeeFn(ctx, employeeID)
}

type fakeInvalidator struct {
	invalidated []string
}

func (f *fakeInvalidator) Invalidate(employeeID string) {
	f.invalidated = append(f.invalidated, employeeID)
}

func TestCreateNormalizesName(t *testing.T) {
	var stored employee.Employee
	employees := &fakeEmployeeRepo{
		GetByNameFn: func(ctx context.Context, fullName string) (*employee.Employee, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
			newEmployee.ID = testEmployeeID
			stored = newEmployee
			return newEmployee, nil
		},
	}
	svc := NewEmployeeService(employees, &fakeRecordRepo{}, &fakeInvalidator{}, sse.NewHub())

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{FullName: "  joao Silva  "})

	require.NoError(t, err)
	assert.Equal(t, "JOAO SILVA", stored.FullName)
	assert.Equal(t, "JOAO SILVA", resp.FullName)
}

func TestCreateRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	var lookedUp string
	employees := &fakeEmployeeRepo{
		GetByNameFn: func(ctx context.Context, fullName string) (*employee.Employee, error) {
			lookedUp = fullName
			return &employee.Employee{ID: testEmployeeID, FullName: "JOAO SILVA"}, nil
		},
	}
	svc := NewEmployeeService(employees, &fakeRecordRepo{}, &fakeInvalidator{}, sse.NewHub())

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{FullName: "joao silva"})

	assert.ErrorIs(t, err, employee.ErrNameExists)
	assert.Equal(t, "JOAO SILVA", lookedUp, "the duplicate check runs on the normalized name")
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{}, &fakeRecordRepo{}, &fakeInvalidator{}, sse.NewHub())

	for _, name := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{FullName: name})
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	}
}

func TestCreatePublishesChange(t *testing.T) {
	employees := &fakeEmployeeRepo{
		GetByNameFn: func(ctx context.Context, fullName string) (*employee.Employee, error) {
			return nil, nil
		},
		CreateFn: func(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
			newEmployee.ID = testEmployeeID
			return newEmployee, nil
		},
	}
	hub := sse.NewHub()
	events, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	svc := NewEmployeeService(employees, &fakeRecordRepo{}, &fakeInvalidator{}, hub)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{FullName: "Maria"})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, sse.EventEmployeesChanged, ev.Event)
	default:
		t.Fatal("expected an employees.changed event")
	}
}

func TestDeleteCascadesRecordsFirst(t *testing.T) {
	var calls []string
	employees := &fakeEmployeeRepo{
		GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{ID: id, FullName: "JOAO SILVA"}, nil
		},
		DeleteFn: func(ctx context.Context, id string) error {
			calls = append(calls, "identity")
			return nil
		},
	}
	records := &fakeRecordRepo{
		DeleteByEmployeeFn: func(ctx context.Context, employeeID string) error {
			calls = append(calls, "records")
			return nil
		},
	}
	calendars := &fakeInvalidator{}
	svc := NewEmployeeService(employees, records, calendars, sse.NewHub())

	err := svc.Delete(context.Background(), testEmployeeID)

	require.NoError(t, err)
	assert.Equal(t, []string{"records", "identity"}, calls)
	assert.Equal(t, []string{testEmployeeID}, calendars.invalidated)
}

func TestDeleteUnknownEmployee(t *testing.T) {
	employees := &fakeEmployeeRepo{
		GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		},
	}
	calendars := &fakeInvalidator{}
	svc := NewEmployeeService(employees, &fakeRecordRepo{}, calendars, sse.NewHub())

	err := svc.Delete(context.Background(), testEmployeeID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, calendars.invalidated, "nothing was deleted, nothing to invalidate")
}

func TestDeleteRecordsFailureAbortsCascade(t *testing.T) {
	storeErr := errors.New("connection reset")
	var identityDeleted bool
	employees := &fakeEmployeeRepo{
		GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{ID: id}, nil
		},
		DeleteFn: func(ctx context.Context, id string) error {
			identityDeleted = true
			return nil
		},
	}
	records := &fakeRecordRepo{
		DeleteByEmployeeFn: func(ctx context.Context, employeeID string) error {
			return storeErr
		},
	}
	calendars := &fakeInvalidator{}
	svc := NewEmployeeService(employees, records, calendars, sse.NewHub())

	err := svc.Delete(context.Background(), testEmployeeID)

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, employee.ErrPartialDeletion, "nothing was deleted, so the state is not partial")
	assert.False(t, identityDeleted, "the identity must survive when its records could not be removed")
	assert.Empty(t, calendars.invalidated, "the records survived, the calendar is still accurate")
}

func TestDeleteIdentityFailureIsPartial(t *testing.T) {
	storeErr := errors.New("connection reset")
	employees := &fakeEmployeeRepo{
		GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{ID: id}, nil
		},
		DeleteFn: func(ctx context.Context, id string) error {
			return storeErr
		},
	}
	records := &fakeRecordRepo{
		DeleteByEmployeeFn: func(ctx context.Context, employeeID string) error {
			return nil
		},
	}
	calendars := &fakeInvalidator{}
	svc := NewEmployeeService(employees, records, calendars, sse.NewHub())

	err := svc.Delete(context.Background(), testEmployeeID)

	assert.ErrorIs(t, err, employee.ErrPartialDeletion)
	assert.Equal(t, []string{testEmployeeID}, calendars.invalidated,
		"the records are gone even though the identity remains, so the calendar is stale")
}

func TestDeleteConvergesWhenIdentityAlreadyGone(t *testing.T) {
	employees := &fakeEmployeeRepo{
		GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{ID: id}, nil
		},
		DeleteFn: func(ctx context.Context, id string) error {
			return employee.ErrEmployeeNotFound
		},
	}
	records := &fakeRecordRepo{
		DeleteByEmployeeFn: func(ctx context.Context, employeeID string) error {
			return nil
		},
	}
	calendars := &fakeInvalidator{}
	svc := NewEmployeeService(employees, records, calendars, sse.NewHub())

	err := svc.Delete(context.Background(), testEmployeeID)
	assert.NoError(t, err, "a concurrent removal of the same employee is not a failure")
	assert.Equal(t, []string{testEmployeeID}, calendars.invalidated)
}

// TestDeleteDropsResolvedCalendar runs the cascade against the real
// reconciler: once an employee is deleted, their previously selected calendar
// must stop resolving colors.
func TestDeleteDropsResolvedCalendar(t *testing.T) {
	date := time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC)
	store := map[string]timerecord.TimeRecord{
		timerecord.DateKey(date): {
			ID:         "rec-1",
			EmployeeID: testEmployeeID,
			Date:       date,
			Status:     timerecord.StatusDelivered,
		},
	}
	present := true

	employees := &fakeEmployeeRepo{
		GetByIDFn: func(ctx context.Context, id string) (employee.Employee, error) {
			if !present {
				return employee.Employee{}, employee.ErrEmployeeNotFound
			}
			return employee.Employee{ID: id, FullName: "JOAO SILVA"}, nil
		},
		DeleteFn: func(ctx context.Context, id string) error {
			present = false
			return nil
		},
	}
	records := &fakeRecordRepo{
		ListByEmployeeFn: func(ctx context.Context, employeeID string) ([]timerecord.TimeRecord, error) {
			var out []timerecord.TimeRecord
			for _, rec := range store {
				out = append(out, rec)
			}
			return out, nil
		},
		DeleteByEmployeeFn: func(ctx context.Context, employeeID string) error {
			for key, rec := range store {
				if rec.EmployeeID == employeeID {
					delete(store, key)
				}
			}
			return nil
		},
	}

	hub := sse.NewHub()
	recordSvc := timerecordService.NewTimeRecordService(records, employees, hub)
	employeeSvc := NewEmployeeService(employees, records, recordSvc, hub)

	_, err := recordSvc.Select(context.Background(), testEmployeeID)
	require.NoError(t, err)

	color, ok := recordSvc.ResolveColor(testEmployeeID, date)
	require.True(t, ok)
	require.Equal(t, timerecord.Color("#10B981"), color)

	require.NoError(t, employeeSvc.Delete(context.Background(), testEmployeeID))

	_, ok = recordSvc.ResolveColor(testEmployeeID, date)
	assert.False(t, ok, "a deleted employee's calendar must not resolve colors")
}

func TestListAppliesDefaults(t *testing.T) {
	var gotPage, gotLimit int
	employees := &fakeEmployeeRepo{
		ListFn: func(ctx context.Context, page, limit int) ([]employee.Employee, int64, error) {
			gotPage, gotLimit = page, limit
			return []employee.Employee{{ID: testEmployeeID, FullName: "JOAO SILVA"}}, 1, nil
		},
	}
	svc := NewEmployeeService(employees, &fakeRecordRepo{}, &fakeInvalidator{}, sse.NewHub())

	resp, err := svc.List(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, gotPage)
	assert.Equal(t, defaultPageSize, gotLimit)
	assert.Equal(t, int64(1), resp.TotalItems)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, "JOAO SILVA", resp.Employees[0].FullName)
}

func TestFindByName(t *testing.T) {
	employees := &fakeEmployeeRepo{
		GetByNameFn: func(ctx context.Context, fullName string) (*employee.Employee, error) {
			if fullName == "JOAO SILVA" {
				return &employee.Employee{ID: testEmployeeID, FullName: "JOAO SILVA"}, nil
			}
			return nil, nil
		},
	}
	svc := NewEmployeeService(employees, &fakeRecordRepo{}, &fakeInvalidator{}, sse.NewHub())

	resp, err := svc.FindByName(context.Background(), "JOAO SILVA")
	require.NoError(t, err)
	assert.Equal(t, testEmployeeID, resp.ID)

	_, err = svc.FindByName(context.Background(), "NOBODY")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
