package report

import (
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/validator"
)

// MonthlyStat is the derived coverage of one status over the working days of
// a month. It is computed on demand and never persisted.
type MonthlyStat struct {
	Status     string  `json:"status"`
	Color      string  `json:"color"`
	Percentage float64 `json:"percentage"`
}

type MonthlyStatsRequest struct {
	EmployeeID string
	Year       int
	Month      int
}

func (r *MonthlyStatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Year < 1970 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1970 and 9999",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthlyStatsResponse struct {
	EmployeeID  string        `json:"employee_id"`
	Year        int           `json:"year"`
	Month       int           `json:"month"`
	WorkingDays int           `json:"working_days"`
	Stats       []MonthlyStat `json:"stats"`
}
