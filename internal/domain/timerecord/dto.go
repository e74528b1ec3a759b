package timerecord

import (
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/validator"
)

// ========================================
// TIME RECORD DTOs
// ========================================

type SetStatusRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: delivered, half-delivered, owing, released, incomplete",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Color      string `json:"color"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func NewRecordResponse(r TimeRecord) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Key(),
		Status:     string(r.Status),
		Color:      string(ColorOf(r.Status)),
		CreatedAt:  r.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  r.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CalendarMark is one decorated day on the panel calendar.
type CalendarMark struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Color  string `json:"color"`
}

type CalendarResponse struct {
	EmployeeID string         `json:"employee_id"`
	Marks      []CalendarMark `json:"marks"`
}
