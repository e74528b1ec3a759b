package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/employee"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.Repository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(&emp.ID, &emp.FullName, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByName implements employee.Repository.
func (e *employeeRepositoryImpl) GetByName(ctx context.Context, fullName string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, created_at, updated_at
		FROM employees
		WHERE LOWER(full_name) = LOWER($1)
		LIMIT 1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, fullName).Scan(&emp.ID, &emp.FullName, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return &emp, nil
}

// List implements employee.Repository.
func (e *employeeRepositoryImpl) List(ctx context.Context, page, limit int) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `
		SELECT id, full_name, created_at, updated_at
		FROM employees
		ORDER BY full_name
		LIMIT $1 OFFSET $2
	`

	offset := (page - 1) * limit
	rows, err := q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.FullName, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Create implements employee.Repository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (id, full_name)
		VALUES ($1, $2)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, newEmployee.ID, newEmployee.FullName).
		Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrNameExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Delete implements employee.Repository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
