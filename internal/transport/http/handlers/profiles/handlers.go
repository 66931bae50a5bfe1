package profileshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"slipgen/internal/domain/profiles"
	"slipgen/internal/transport/http/api"
	"slipgen/internal/transport/http/middleware"
)

type Handler struct {
	Store *profiles.Store
}

func NewHandler(store *profiles.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/profiles", func(r chi.Router) {
		r.Use(middleware.RequireOwner)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Delete("/{profileID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	list, err := h.Store.List(r.Context(), owner.OwnerID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "profiles_list_failed", "failed to list profiles", reqID)
		return
	}
	if list == nil {
		list = []profiles.ChildProfile{}
	}
	api.Success(w, list, reqID)
}

type createProfileRequest struct {
	Name string `json:"name"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	var payload createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "name must not be empty", reqID)
		return
	}

	profile, err := h.Store.Create(r.Context(), owner.OwnerID, name)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "profile_create_failed", "failed to create profile", reqID)
		return
	}
	api.Created(w, profile, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	owner, _ := middleware.GetOwner(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	err := h.Store.Delete(r.Context(), owner.OwnerID, chi.URLParam(r, "profileID"))
	if errors.Is(err, profiles.ErrProfileNotFound) {
		api.Fail(w, http.StatusNotFound, "profile_not_found", "profile not found", reqID)
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "profile_delete_failed", "failed to delete profile", reqID)
		return
	}
	api.Success(w, map[string]any{"deleted": true}, reqID)
}
