package holidayhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ponto/internal/domain/holiday"
	"ponto/internal/platform/datekey"
	"ponto/internal/transport/http/api"
	"ponto/internal/transport/http/middleware"
)

type Handler struct {
	Service *holiday.Service
}

func NewHandler(service *holiday.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router, guard func(http.Handler) http.Handler) {
	// One wildcard name for the whole subtree; chi rejects mixed param
	// names at the same position. GET takes a month key, PUT and DELETE a
	// full date key.
	r.Route("/holidays", func(r chi.Router) {
		r.Get("/{key}", h.handleMonth)
		r.With(guard).Put("/{key}", h.handleSave)
		r.With(guard).Delete("/{key}", h.handleRemove)
	})
}

func (h *Handler) handleMonth(w http.ResponseWriter, r *http.Request) {
	year, month, err := datekey.ParseMonth(chi.URLParam(r, "key"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_month", "month must look like 2025-06", middleware.GetRequestID(r.Context()))
		return
	}

	entries, err := h.Service.Month(r.Context(), year, month)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "holiday_list_failed", "failed to list holidays", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind        string `json:"kind"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	entry, err := h.Service.Save(r.Context(), chi.URLParam(r, "key"), req.Kind, req.Description)
	switch {
	case errors.Is(err, holiday.ErrUnknownKind):
		api.Fail(w, http.StatusBadRequest, "unknown_kind", "holiday kind must be custom or special-rest-day", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusBadRequest, "holiday_save_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entry, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRemove(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Remove(r.Context(), chi.URLParam(r, "key")); err != nil {
		api.Fail(w, http.StatusBadRequest, "holiday_remove_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"removed": true}, middleware.GetRequestID(r.Context()))
}
