// PrinceMahmood | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/princemahmood117/stayvista-server/internal/core"
	"github.com/princemahmood117/stayvista-server/internal/middleware"
)

type Handler struct {
	tokens   *TokenManager
	cookies  *CookieWriter
	logger   *slog.Logger
	validate *validator.Validate
}

func NewHandler(
	tokens *TokenManager,
	cookies *CookieWriter,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		tokens:   tokens,
		cookies:  cookies,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"omitempty,max=100"`
}

// IssueToken handles POST /jwt. It mints a session token for the identity
// the client just authenticated with its identity provider and stores it in
// an HTTP-only cookie, so scripts on the page can never read it.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	issued, err := h.tokens.Issue(req.Email, req.Name)
	if err != nil {
		h.logger.Error("failed to issue session token",
			"error", err,
			"email", req.Email,
		)
		core.InternalServerError(w, "failed to create session")
		return
	}

	h.cookies.Set(w, issued.Token, h.tokens.TokenExpire())
	core.OK(w, map[string]bool{"success": true})
}

// Logout handles GET /logout. The token ID is denylisted so the session dies
// server-side even if a copy of the cookie survives on the client.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.cookies.Name())
	if err == nil && cookie.Value != "" {
		if err := h.tokens.RevokeToken(r.Context(), cookie.Value); err != nil {
			if !errors.Is(err, core.ErrTokenInvalid) &&
				!errors.Is(err, core.ErrTokenExpired) &&
				!errors.Is(err, core.ErrTokenRevoked) {
				h.logger.Warn("failed to revoke session token",
					"error", err,
					"request_id", middleware.GetRequestID(r.Context()),
				)
			}
		}
	}

	h.cookies.Clear(w)
	core.OK(w, map[string]bool{"success": true})
}
