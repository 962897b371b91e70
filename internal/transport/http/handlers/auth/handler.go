package authhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ponto/internal/domain/auth"
	"ponto/internal/transport/http/api"
	"ponto/internal/transport/http/middleware"
)

// Handler issues admin tokens. There is a single operator account; the
// credential is a bcrypt hash carried in configuration, not a user table.
type Handler struct {
	Secret       string
	PasswordHash string
	TokenTTL     time.Duration
}

func NewHandler(secret, passwordHash string, tokenTTL time.Duration) *Handler {
	return &Handler{Secret: secret, PasswordHash: passwordHash, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if h.Secret == "" || h.PasswordHash == "" {
		api.Fail(w, http.StatusNotFound, "auth_disabled", "authentication is not configured", middleware.GetRequestID(r.Context()))
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", middleware.GetRequestID(r.Context()))
		return
	}

	if err := auth.CheckPassword(h.PasswordHash, req.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{
		"token":     token,
		"expiresIn": int(h.TokenTTL.Seconds()),
	}, middleware.GetRequestID(r.Context()))
}
