package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/timerecord"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type timeRecordRepositoryImpl struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.Repository {
	return &timeRecordRepositoryImpl{db: db}
}

// ListByEmployee implements timerecord.Repository.
func (r *timeRecordRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, record_date, status, created_at, updated_at
		FROM time_records
		WHERE employee_id = $1
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	var records []timerecord.TimeRecord
	for rows.Next() {
		var rec timerecord.TimeRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByEmployeeAndDate implements timerecord.Repository.
func (r *timeRecordRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, record_date, status, created_at, updated_at
		FROM time_records
		WHERE employee_id = $1
		  AND record_date = $2
		LIMIT 1
	`

	var rec timerecord.TimeRecord
	err := q.QueryRow(ctx, query, employeeID, timerecord.DateKey(date)).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this day yet
		}
		return nil, fmt.Errorf("failed to get time record by employee and date: %w", err)
	}

	return &rec, nil
}

// Create implements timerecord.Repository. The unique index on
// (employee_id, record_date) turns a concurrent duplicate insert into
// ErrDuplicateRecord instead of a silent second row.
func (r *timeRecordRepositoryImpl) Create(ctx context.Context, record timerecord.TimeRecord) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO time_records (id, employee_id, record_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING record_date, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, record.ID, record.EmployeeID, timerecord.DateKey(record.Date), record.Status).
		Scan(&record.Date, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timerecord.TimeRecord{}, timerecord.ErrDuplicateRecord
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to create time record: %w", err)
	}

	return record, nil
}

// UpdateStatus implements timerecord.Repository.
func (r *timeRecordRepositoryImpl) UpdateStatus(ctx context.Context, id string, status timerecord.Status) (timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_records
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, employee_id, record_date, status, created_at, updated_at
	`

	var rec timerecord.TimeRecord
	err := q.QueryRow(ctx, query, status, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timerecord.TimeRecord{}, timerecord.ErrRecordNotFound
		}
		return timerecord.TimeRecord{}, fmt.Errorf("failed to update time record: %w", err)
	}

	return rec, nil
}

// DeleteByEmployee implements timerecord.Repository.
func (r *timeRecordRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM time_records WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete time records for employee: %w", err)
	}

	return nil
}
