package http

import (
	"encoding/json"
	"net/http"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/timerecord"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeRecordHandler interface {
	GetCalendar(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
}

type timeRecordHandlerImpl struct {
	recordService timerecord.Service
}

func NewTimeRecordHandler(recordService timerecord.Service) TimeRecordHandler {
	return &timeRecordHandlerImpl{
		recordService: recordService,
	}
}

// GetCalendar implements TimeRecordHandler. Selecting an employee's calendar
// makes them the active employee and rebuilds the date-indexed mapping.
func (h *timeRecordHandlerImpl) GetCalendar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.recordService.Select(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

type setStatusBody struct {
	Status string `json:"status"`
}

// SetStatus implements TimeRecordHandler. PUT semantics: the record for
// (employee, date) is created or updated, never duplicated.
func (h *timeRecordHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	date := chi.URLParam(r, "date")
	if id == "" || date == "" {
		response.BadRequest(w, "Employee ID and date are required", nil)
		return
	}

	var body setStatusBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req := timerecord.SetStatusRequest{
		EmployeeID: id,
		Date:       date,
		Status:     body.Status,
	}

	result, err := h.recordService.SetStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record saved", result)
}
