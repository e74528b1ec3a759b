package report

import (
	"context"
	"fmt"
	"time"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/employee"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/report"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/timerecord"
)

// ColorResolver answers which color, if any, decorates a calendar day.
type ColorResolver func(day time.Time) (timerecord.Color, bool)

type ReportServiceImpl struct {
	records   timerecord.Repository
	employees employee.Repository
}

func NewReportService(records timerecord.Repository, employees employee.Repository) *ReportServiceImpl {
	return &ReportServiceImpl{
		records:   records,
		employees: employees,
	}
}

// MonthlyStats loads one employee's records and derives per-status coverage
// percentages for the requested month.
func (s *ReportServiceImpl) MonthlyStats(ctx context.Context, req report.MonthlyStatsRequest) (report.MonthlyStatsResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyStatsResponse{}, err
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		return report.MonthlyStatsResponse{}, err
	}

	records, err := s.records.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return report.MonthlyStatsResponse{}, fmt.Errorf("failed to load records for stats: %w", err)
	}

	byDate := make(map[string]timerecord.Status, len(records))
	for _, rec := range records {
		byDate[rec.Key()] = rec.Status
	}

	resolve := func(day time.Time) (timerecord.Color, bool) {
		status, ok := byDate[timerecord.DateKey(day)]
		if !ok {
			return "", false
		}
		return timerecord.ColorOf(status), true
	}

	stats := Compute(req.Year, time.Month(req.Month), resolve)

	return report.MonthlyStatsResponse{
		EmployeeID:  req.EmployeeID,
		Year:        req.Year,
		Month:       req.Month,
		WorkingDays: countWorkingDays(req.Year, time.Month(req.Month)),
		Stats:       stats,
	}, nil
}

// Compute derives one MonthlyStat per known status, in registry order, over
// the working days of (year, month). A day whose resolved color does not map
// back to a known status contributes to no numerator but still counts in the
// denominator. A month without working days yields all zeros, never NaN.
func Compute(year int, month time.Month, resolve ColorResolver) []report.MonthlyStat {
	workingDays := 0
	counts := make(map[timerecord.Status]int, len(timerecord.Statuses))

	for day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); day.Month() == month; day = day.AddDate(0, 0, 1) {
		if !timerecord.IsWorkingDay(day) {
			continue
		}
		workingDays++

		color, ok := resolve(day)
		if !ok {
			continue
		}
		if status, known := timerecord.StatusOf(color); known {
			counts[status]++
		}
	}

	stats := make([]report.MonthlyStat, 0, len(timerecord.Statuses))
	for _, status := range timerecord.Statuses {
		percentage := 0.0
		if workingDays > 0 {
			percentage = float64(counts[status]) / float64(workingDays) * 100
		}
		stats = append(stats, report.MonthlyStat{
			Status:     string(status),
			Color:      string(timerecord.ColorOf(status)),
			Percentage: percentage,
		})
	}

	return stats
}

func countWorkingDays(year int, month time.Month) int {
	n := 0
	for day := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); day.Month() == month; day = day.AddDate(0, 0, 1) {
		if timerecord.IsWorkingDay(day) {
			n++
		}
	}
	return n
}
