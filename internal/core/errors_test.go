// PrinceMahmood | 2026
// errors_test.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		sentinel error
		status   int
		code     string
	}{
		{"unauthorized", UnauthorizedError(""), ErrUnauthorized,
			http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", ForbiddenError(""), ErrForbidden,
			http.StatusForbidden, "FORBIDDEN"},
		{"not found", NotFoundError("room"), ErrNotFound,
			http.StatusNotFound, "NOT_FOUND"},
		{"conflict", ConflictError("room is already booked"), ErrConflict,
			http.StatusConflict, "CONFLICT"},
		{"bad request", BadRequestError("price is required"), ErrInvalidInput,
			http.StatusBadRequest, "BAD_REQUEST"},
		{"token expired", TokenExpiredError(), ErrTokenExpired,
			http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"token revoked", TokenRevokedError(), ErrTokenRevoked,
			http.StatusUnauthorized, "TOKEN_REVOKED"},
		{"token invalid", TokenInvalidError(), ErrTokenInvalid,
			http.StatusUnauthorized, "TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			if tt.err.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", tt.err.StatusCode, tt.status)
			}
			if tt.err.Code != tt.code {
				t.Errorf("code = %q, want %q", tt.err.Code, tt.code)
			}
		})
	}
}

func TestUnauthorizedErrorDefaultMessage(t *testing.T) {
	if got := UnauthorizedError("").Message; got != "unauthorized access" {
		t.Errorf("message = %q, want unauthorized access", got)
	}
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("delete booking: %w", ForbiddenError("not allowed"))

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("AsAppError failed on wrapped AppError")
	}
	if appErr.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want %d",
			appErr.StatusCode, http.StatusForbidden)
	}

	if _, ok := AsAppError(errors.New("plain")); ok {
		t.Error("AsAppError matched a plain error")
	}
}

func TestNotFoundErrorNamesResource(t *testing.T) {
	if got := NotFoundError("room").Message; got != "room not found" {
		t.Errorf("message = %q, want room not found", got)
	}
}
