// PrinceMahmood | 2026
// handler.go

package user

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/princemahmood117/stayvista-server/internal/core"
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

// Save handles PUT /user, the login bootstrap upsert.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, err := h.service.SaveOnLogin(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to save user", "error", err, "email", req.Email)
		core.InternalServerError(w, "failed to save user")
		return
	}

	core.OK(w, u)
}

// List handles GET /users (admin only, gated by the router).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		core.InternalServerError(w, "failed to list users")
		return
	}

	core.OK(w, users)
}

// Get handles GET /user/{email}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	u, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		h.logger.Error("failed to get user", "error", err, "email", email)
		core.InternalServerError(w, "failed to get user")
		return
	}

	core.OK(w, u)
}

// UpdateRole handles PATCH /users/update/{email} (admin only, gated by the
// router). Granting a role clears any pending host request.
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	u, err := h.service.SetRole(r.Context(), email, req.Role)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		h.logger.Error("failed to update role", "error", err, "email", email)
		core.InternalServerError(w, "failed to update role")
		return
	}

	h.logger.Info("user role updated", "email", email, "role", req.Role)
	core.OK(w, u)
}
