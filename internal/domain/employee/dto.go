package employee

import (
	"strings"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName string `json:"full_name"`
}

// NormalizedName returns the trimmed, uppercased form the directory stores.
func (r *CreateEmployeeRequest) NormalizedName() string {
	return strings.ToUpper(strings.TrimSpace(r.FullName))
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		CreatedAt: e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
