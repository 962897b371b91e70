package timesheethandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ponto/internal/domain/timesheet"
	"ponto/internal/platform/datekey"
	"ponto/internal/transport/http/api"
	"ponto/internal/transport/http/middleware"
)

type Handler struct {
	Service *timesheet.Service
}

func NewHandler(service *timesheet.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router, guard func(http.Handler) http.Handler) {
	// Flat registrations so the export routes can live beside these under
	// the same /days/{date} prefix without a subrouter mount.
	r.Get("/days/{date}", h.handleGetDay)
	r.With(guard).Put("/days/{date}", h.handleSaveDay)
	r.With(guard).Delete("/days/{date}", h.handleClearDay)
	r.Get("/days/{date}/breakdown", h.handleBreakdown)
	r.Get("/months/{month}/days", h.handleMonthDays)
	r.Post("/timesheet/preview", h.handlePreview)
}

func (h *Handler) handleGetDay(w http.ResponseWriter, r *http.Request) {
	date, err := datekey.Parse(chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must look like 2025-06-15", middleware.GetRequestID(r.Context()))
		return
	}

	rows, err := h.Service.Day(r.Context(), date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "day_load_failed", "failed to load day sheet", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rows, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveDay(w http.ResponseWriter, r *http.Request) {
	date, err := datekey.Parse(chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must look like 2025-06-15", middleware.GetRequestID(r.Context()))
		return
	}

	var req struct {
		Records []timesheet.PunchRecord `json:"records"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}
	for _, record := range req.Records {
		if record.EmployeeID == "" {
			api.Fail(w, http.StatusBadRequest, "missing_employee", "every record needs an employeeId", middleware.GetRequestID(r.Context()))
			return
		}
	}

	if err := h.Service.SaveDay(r.Context(), date, req.Records); err != nil {
		api.Fail(w, http.StatusInternalServerError, "day_save_failed", "failed to save day sheet", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"date": datekey.Format(date)}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleClearDay(w http.ResponseWriter, r *http.Request) {
	date, err := datekey.Parse(chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must look like 2025-06-15", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Service.ClearDay(r.Context(), date); err != nil {
		api.Fail(w, http.StatusInternalServerError, "day_clear_failed", "failed to clear day sheet", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"date": datekey.Format(date)}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	date, err := datekey.Parse(chi.URLParam(r, "date"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_date", "date must look like 2025-06-15", middleware.GetRequestID(r.Context()))
		return
	}

	rows, err := h.Service.DayBreakdown(r.Context(), date)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "breakdown_failed", "failed to compute day breakdown", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, rows, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMonthDays(w http.ResponseWriter, r *http.Request) {
	year, month, err := datekey.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_month", "month must look like 2025-06", middleware.GetRequestID(r.Context()))
		return
	}

	days, err := h.Service.MonthDaysWithData(r.Context(), year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "month_load_failed", "failed to list recorded days", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, days, middleware.GetRequestID(r.Context()))
}

// handlePreview computes a breakdown for punches that were never saved. The
// caller gets the same numbers a saved day would produce under quota 8 with
// no holiday, which is what a quick what-if needs.
func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	var record timesheet.PunchRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	breakdown, err := h.Service.Preview(r.Context(), record)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "preview_failed", "failed to compute preview", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, breakdown, middleware.GetRequestID(r.Context()))
}
