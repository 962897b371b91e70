package rosterhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ponto/internal/domain/roster"
	"ponto/internal/transport/http/api"
	"ponto/internal/transport/http/middleware"
)

type Handler struct {
	Service *roster.Service
}

func NewHandler(service *roster.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router, guard func(http.Handler) http.Handler) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.With(guard).Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.With(guard).Delete("/", h.handleRemove)
			r.Get("/config", h.handleGetConfig)
			r.With(guard).Put("/config", h.handleSaveConfig)
		})
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "employee_list_failed", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	employee, err := h.Service.Create(r.Context(), req.Name)
	switch {
	case errors.Is(err, roster.ErrEmptyName):
		api.Fail(w, http.StatusBadRequest, "empty_name", "employee name is required", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, roster.ErrDuplicateName):
		api.Fail(w, http.StatusConflict, "duplicate_name", "an employee with that name already exists", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "employee_create_failed", "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}

	api.Created(w, employee, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	err := h.Service.Remove(r.Context(), employeeID)
	switch {
	case errors.Is(err, roster.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "employee_remove_failed", "failed to remove employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"id": employeeID}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	record, err := h.Service.Config(r.Context(), employeeID)
	switch {
	case errors.Is(err, roster.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "config_load_failed", "failed to load pay config", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"stored":    record,
		"effective": record.PayConfig(),
	}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveConfig(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var record roster.ConfigRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Service.SaveConfig(r.Context(), employeeID, record)
	switch {
	case errors.Is(err, roster.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "config_save_failed", "failed to save pay config", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"stored":    record,
		"effective": record.PayConfig(),
	}, middleware.GetRequestID(r.Context()))
}
