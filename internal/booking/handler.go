// PrinceMahmood | 2026
// handler.go

package booking

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

// Create handles POST /booking.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	ctx := r.Context()
	b, err := h.service.Create(
		ctx, middleware.GetUserEmail(ctx), middleware.GetUserName(ctx), &req,
	)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrConflict):
			core.Conflict(w, "room is already booked")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "invalid room id")
		default:
			h.logger.Error("failed to create booking", "error", err)
			core.InternalServerError(w, "failed to create booking")
		}
		return
	}

	core.Created(w, b)
}

// Delete handles DELETE /booking/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		core.BadRequest(w, "invalid booking id")
		return
	}

	err = h.service.Delete(r.Context(), id, middleware.GetUserEmail(r.Context()))
	if err != nil {
		h.respondError(w, err, "failed to delete booking")
		return
	}

	core.OK(w, map[string]bool{"success": true})
}

// MyBookings handles GET /my-bookings/{email}.
func (h *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.MyBookings(
		r.Context(), chi.URLParam(r, "email"), middleware.GetUserEmail(r.Context()),
	)
	if err != nil {
		h.respondError(w, err, "failed to list bookings")
		return
	}

	core.OK(w, bookings)
}

// ManageBookings handles GET /manage-bookings/{email} (host only, gated by
// the router).
func (h *Handler) ManageBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ManageBookings(
		r.Context(), chi.URLParam(r, "email"), middleware.GetUserEmail(r.Context()),
	)
	if err != nil {
		h.respondError(w, err, "failed to list bookings")
		return
	}

	core.OK(w, bookings)
}

// AdminStats handles GET /admin-stat (admin only, gated by the router).
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.AdminStats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute admin stats", "error", err)
		core.InternalServerError(w, "failed to compute statistics")
		return
	}

	core.OK(w, stats)
}

// HostStats handles GET /host-stat (host only, gated by the router), scoped
// to the caller.
func (h *Handler) HostStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.HostStats(
		r.Context(), middleware.GetUserEmail(r.Context()),
	)
	if err != nil {
		h.respondStatsError(w, err)
		return
	}

	core.OK(w, stats)
}

// GuestStats handles GET /guest-stat, scoped to the caller.
func (h *Handler) GuestStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GuestStats(
		r.Context(), middleware.GetUserEmail(r.Context()),
	)
	if err != nil {
		h.respondStatsError(w, err)
		return
	}

	core.OK(w, stats)
}

func (h *Handler) respondStatsError(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrNotFound) {
		core.NotFound(w, "user")
		return
	}
	h.logger.Error("failed to compute statistics", "error", err)
	core.InternalServerError(w, "failed to compute statistics")
}

func (h *Handler) respondError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "booking")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "not allowed")
	default:
		h.logger.Error(fallback, "error", err)
		core.InternalServerError(w, fallback)
	}
}
