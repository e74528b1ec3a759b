package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/report"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// ReportService is the monthly statistics surface consumed by the handler.
type ReportService interface {
	MonthlyStats(ctx context.Context, req report.MonthlyStatsRequest) (report.MonthlyStatsResponse, error)
}

type ReportHandler interface {
	MonthlyStats(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService ReportService
}

func NewReportHandler(reportService ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// MonthlyStats implements ReportHandler.
func (h *reportHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' must be a number", nil)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must be a number", nil)
		return
	}

	req := report.MonthlyStatsRequest{
		EmployeeID: id,
		Year:       year,
		Month:      month,
	}

	result, err := h.reportService.MonthlyStats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
