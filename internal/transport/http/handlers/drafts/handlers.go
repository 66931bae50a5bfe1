package draftshandler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"slipgen/internal/domain/drafts"
	"slipgen/internal/transport/http/api"
	"slipgen/internal/transport/http/middleware"
)

// Handler exposes the draft persistence port. Payloads are opaque JSON blobs
// owned by the frontend; the server only stores, returns and expires them.
type Handler struct {
	Service *drafts.Service
}

func NewHandler(service *drafts.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/drafts", func(r chi.Router) {
		r.Use(middleware.RequireOwner)
		r.Get("/{key}", h.handleLoad)
		r.Put("/{key}", h.handleSave)
		r.Delete("/{key}", h.handleDiscard)
	})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	payload, err := h.Service.Load(r.Context(), owner.OwnerID, chi.URLParam(r, "key"))
	if errors.Is(err, drafts.ErrDraftNotFound) {
		api.Fail(w, http.StatusNotFound, "draft_not_found", "draft not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "draft_load_failed", "failed to load draft", reqID)
		return
	}
	api.Success(w, json.RawMessage(payload), reqID)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "failed to read draft payload", reqID)
		return
	}
	if !json.Valid(payload) {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "draft payload must be valid JSON", reqID)
		return
	}

	if err := h.Service.Save(r.Context(), owner.OwnerID, chi.URLParam(r, "key"), payload); err != nil {
		api.Fail(w, http.StatusInternalServerError, "draft_save_failed", "failed to save draft", reqID)
		return
	}
	api.Success(w, map[string]any{"saved": true}, reqID)
}

func (h *Handler) handleDiscard(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	if err := h.Service.Discard(r.Context(), owner.OwnerID, chi.URLParam(r, "key")); err != nil {
		api.Fail(w, http.StatusInternalServerError, "draft_discard_failed", "failed to discard draft", reqID)
		return
	}
	api.Success(w, map[string]any{"discarded": true}, reqID)
}
