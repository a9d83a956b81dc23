// PrinceMahmood | 2026
// handler_test.go

package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestHandler(t *testing.T, dl Denylist) *Handler {
	t.Helper()

	m := newTestManager(t, time.Hour, dl)
	cookies := NewCookieWriter("token", false)
	return NewHandler(m, cookies, slog.Default())
}

func TestIssueTokenSetsSessionCookie(t *testing.T) {
	h := newTestHandler(t, newFakeDenylist())

	req := httptest.NewRequest(http.MethodPost, "/jwt",
		strings.NewReader(`{"email": "guest@example.com", "name": "Guest"}`))
	rec := httptest.NewRecorder()
	h.IssueToken(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s",
			rec.Code, http.StatusOK, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Errorf("body = %s, want success true", rec.Body.String())
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != "token" || c.Value == "" {
		t.Errorf("cookie = %s=%q, want non-empty token", c.Name, c.Value)
	}
	if !c.HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}
}

func TestIssueTokenValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"name": "Guest"}`},
		{"bad email", `{"email": "not-an-email"}`},
		{"malformed body", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, newFakeDenylist())

			req := httptest.NewRequest(http.MethodPost, "/jwt",
				strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.IssueToken(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Error("cookie set for rejected request")
			}
		})
	}
}

func TestLogoutRevokesAndClearsCookie(t *testing.T) {
	dl := newFakeDenylist()
	h := newTestHandler(t, dl)

	issued, err := h.tokens.Issue("guest@example.com", "Guest")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: issued.Token})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !dl.revoked[issued.TokenID] {
		t.Error("token id not denylisted on logout")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	if cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Errorf("cookie not cleared: value=%q maxAge=%d",
			cookies[0].Value, cookies[0].MaxAge)
	}
}

func TestLogoutWithoutCookieStillSucceeds(t *testing.T) {
	h := newTestHandler(t, newFakeDenylist())

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestLogoutWithGarbageCookieStillSucceeds(t *testing.T) {
	h := newTestHandler(t, newFakeDenylist())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
