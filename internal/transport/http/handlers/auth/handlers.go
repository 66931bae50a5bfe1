package authhandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"slipgen/internal/domain/auth"
	"slipgen/internal/transport/http/api"
	"slipgen/internal/transport/http/middleware"
)

type Handler struct {
	Service  *auth.Store
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(store *auth.Store, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{Service: store, Secret: secret, TokenTTL: tokenTTL}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/logout", h.handleLogout)
	r.With(middleware.RequireOwner).Put("/auth/parent-mode", h.handleParentMode)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	owner, err := h.Service.FindOwnerByEmail(r.Context(), payload.Email)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}
	if err := auth.CheckPassword(owner.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{
		OwnerID:    owner.ID,
		Email:      owner.Email,
		ParentMode: owner.ParentMode,
	}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to issue token", reqID)
		return
	}

	if err := h.Service.UpdateLastLogin(r.Context(), owner.ID); err != nil {
		slog.Warn("update last login failed", "err", err, "requestId", reqID)
	}

	api.Success(w, map[string]any{
		"token":       token,
		"displayName": owner.DisplayName,
		"parentMode":  owner.ParentMode,
	}, reqID)
}

// handleLogout exists for API symmetry; tokens are stateless and simply
// expire, so the client discards its copy.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	api.Success(w, map[string]any{"loggedOut": true}, middleware.GetRequestID(r.Context()))
}

type parentModeRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *Handler) handleParentMode(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	var payload parentModeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	if err := h.Service.SetParentMode(r.Context(), owner.OwnerID, payload.Enabled); err != nil {
		api.Fail(w, http.StatusInternalServerError, "parent_mode_failed", "failed to update parent mode", reqID)
		return
	}
	api.Success(w, map[string]any{"parentMode": payload.Enabled}, reqID)
}
