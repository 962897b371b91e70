package synchandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ponto/internal/domain/sheetsync"
	"ponto/internal/platform/metrics"
	"ponto/internal/transport/http/api"
	"ponto/internal/transport/http/middleware"
)

type Handler struct {
	Service *sheetsync.Service
	Metrics *metrics.Collector
}

func NewHandler(service *sheetsync.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector}
}

func (h *Handler) RegisterRoutes(r chi.Router, guard func(http.Handler) http.Handler) {
	r.With(guard).Post("/sync/pull", h.handlePull)
	r.With(guard).Post("/sync/backfill", h.handleBackfill)
}

func (h *Handler) handlePull(w http.ResponseWriter, r *http.Request) {
	if !h.Service.Enabled() {
		api.Fail(w, http.StatusConflict, "sync_disabled", "spreadsheet sync is not configured", middleware.GetRequestID(r.Context()))
		return
	}

	summary, err := h.Service.Pull(r.Context())
	if err != nil {
		if h.Metrics != nil {
			h.Metrics.RecordSyncFailure()
		}
		api.Fail(w, http.StatusBadGateway, "sync_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleBackfill(w http.ResponseWriter, r *http.Request) {
	if !h.Service.Enabled() {
		api.Fail(w, http.StatusConflict, "sync_disabled", "spreadsheet sync is not configured", middleware.GetRequestID(r.Context()))
		return
	}

	var req struct {
		Days int `json:"days"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	summary, err := h.Service.Backfill(r.Context(), req.Days)
	if err != nil {
		if h.Metrics != nil {
			h.Metrics.RecordSyncFailure()
		}
		api.Fail(w, http.StatusBadGateway, "sync_failed", err.Error(), middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}
