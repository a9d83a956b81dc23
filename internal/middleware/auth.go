// PrinceMahmood | 2026
// auth.go

package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/princemahmood117/stayvista-server/internal/core"
)

type SessionClaims struct {
	Email   string
	Name    string
	TokenID string
}

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*SessionClaims, error)
}

// RoleResolver reads the caller's persisted role. It must hit the store on
// every call: a role revoked by an admin takes effect on the very next
// request, so nothing here may cache.
type RoleResolver interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// Authenticator is the first guard stage: extract the session cookie, verify
// the token, and load the identity into the request context. No handler runs
// and no data is touched when verification fails.
func Authenticator(
	verifier TokenVerifier,
	cookieName string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r, cookieName)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("unauthorized access"),
				)
				return
			}

			claims, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				handleAuthError(w, err)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
			ctx = context.WithValue(ctx, UserNameKey, claims.Name)
			ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole is the second guard stage. It re-reads the stored role for the
// authenticated email on every request; a missing user record counts as "no
// role". Both absence and mismatch reject with 401, mirroring the first
// stage: the caller has no usable identity for this operation.
func RequireRole(
	resolver RoleResolver,
	role string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetUserEmail(r.Context())

			if email == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("unauthorized access"),
				)
				return
			}

			stored, err := resolver.RoleByEmail(r.Context(), email)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					core.JSONError(
						w,
						core.UnauthorizedError("unauthorized access"),
					)
					return
				}
				core.InternalServerError(w, "failed to resolve role")
				return
			}

			if stored != role {
				core.JSONError(
					w,
					core.UnauthorizedError("unauthorized access"),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(r *http.Request, cookieName string) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func handleAuthError(w http.ResponseWriter, err error) {
	if core.IsAppError(err) {
		core.JSONError(w, err)
		return
	}

	switch {
	case errors.Is(err, core.ErrTokenExpired):
		core.JSONError(w, core.TokenExpiredError())
	case errors.Is(err, core.ErrTokenRevoked):
		core.JSONError(w, core.TokenRevokedError())
	default:
		core.JSONError(w, core.TokenInvalidError())
	}
}

func GetUserEmail(ctx context.Context) string {
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

func GetUserName(ctx context.Context) string {
	if name, ok := ctx.Value(UserNameKey).(string); ok {
		return name
	}
	return ""
}

func GetTokenID(ctx context.Context) string {
	if id, ok := ctx.Value(TokenIDKey).(string); ok {
		return id
	}
	return ""
}

func IsAuthenticated(ctx context.Context) bool {
	return GetUserEmail(ctx) != ""
}
