// PrinceMahmood | 2026
// handler.go

package room

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/princemahmood117/stayvista-server/internal/core"
	"github.com/princemahmood117/stayvista-server/internal/middleware"
)

type Handler struct {
	service  *Service
	logger   *slog.Logger
	validate *validator.Validate
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List handles GET /rooms?category=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	rooms, err := h.service.List(r.Context(), category)
	if err != nil {
		h.logger.Error("failed to list rooms", "error", err)
		core.InternalServerError(w, "failed to list rooms")
		return
	}

	core.OK(w, rooms)
}

// Get handles GET /room/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.roomID(w, r)
	if !ok {
		return
	}

	rm, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err, "failed to get room")
		return
	}

	core.OK(w, rm)
}

// Create handles POST /room (host only, gated by the router).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	rm, err := h.service.Create(r.Context(), middleware.GetUserEmail(r.Context()), req)
	if err != nil {
		h.logger.Error("failed to create room", "error", err)
		core.InternalServerError(w, "failed to create room")
		return
	}

	core.Created(w, rm)
}

// MyListings handles GET /my-listings/{email} (host only).
func (h *Handler) MyListings(w http.ResponseWriter, r *http.Request) {
	pathEmail := chi.URLParam(r, "email")

	rooms, err := h.service.MyListings(
		r.Context(), pathEmail, middleware.GetUserEmail(r.Context()),
	)
	if err != nil {
		h.respondError(w, err, "failed to list rooms")
		return
	}

	core.OK(w, rooms)
}

// Update handles PUT /room/update/{id} (host only).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.roomID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeSaveRequest(w, r)
	if !ok {
		return
	}

	rm, err := h.service.Update(
		r.Context(), id, middleware.GetUserEmail(r.Context()), req,
	)
	if err != nil {
		h.respondError(w, err, "failed to update room")
		return
	}

	core.OK(w, rm)
}

// Delete handles DELETE /room/{id} (host only).
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.roomID(w, r)
	if !ok {
		return
	}

	err := h.service.Delete(r.Context(), id, middleware.GetUserEmail(r.Context()))
	if err != nil {
		h.respondError(w, err, "failed to delete room")
		return
	}

	core.OK(w, map[string]bool{"success": true})
}

// UpdateStatus handles PATCH /room/status/{id}. Requires a session; the
// service enforces owner-or-admin.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.roomID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	err := h.service.SetBooked(
		r.Context(), id, middleware.GetUserEmail(r.Context()), *req.Booked,
	)
	if err != nil {
		h.respondError(w, err, "failed to update room status")
		return
	}

	core.OK(w, map[string]bool{"success": true})
}

func (h *Handler) roomID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.BadRequest(w, "invalid room id")
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) decodeSaveRequest(
	w http.ResponseWriter,
	r *http.Request,
) (*SaveRoomRequest, bool) {
	var req SaveRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return nil, false
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return nil, false
	}

	return &req, true
}

func (h *Handler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "room")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "you do not own this room")
	default:
		h.logger.Error(fallback, "error", err)
		core.InternalServerError(w, fallback)
	}
}
