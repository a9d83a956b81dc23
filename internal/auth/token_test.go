// PrinceMahmood | 2026
// token_test.go

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/princemahmood117/stayvista-server/internal/config"
	"github.com/princemahmood117/stayvista-server/internal/core"
)

type fakeDenylist struct {
	revoked map[string]bool
	err     error
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{revoked: map[string]bool{}}
}

func (f *fakeDenylist) Revoke(
	_ context.Context,
	tokenID string,
	_ time.Time,
) error {
	if f.err != nil {
		return f.err
	}
	f.revoked[tokenID] = true
	return nil
}

func (f *fakeDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[tokenID], nil
}

func newTestManager(t *testing.T, expire time.Duration, dl Denylist) *TokenManager {
	t.Helper()

	m, err := NewTokenManager(config.SessionConfig{
		Secret:      "test-secret-key-for-sessions",
		TokenExpire: expire,
	}, dl)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	return m
}

func TestIssueAndVerify(t *testing.T) {
	m := newTestManager(t, 365*24*time.Hour, newFakeDenylist())

	issued, err := m.Issue("guest@example.com", "Guest")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if issued.Token == "" || issued.TokenID == "" {
		t.Fatal("issued token or token id is empty")
	}

	wantExpiry := time.Now().Add(365 * 24 * time.Hour)
	if diff := issued.ExpiresAt.Sub(wantExpiry); diff < -time.Minute ||
		diff > time.Minute {
		t.Errorf("expiry = %v, want about %v", issued.ExpiresAt, wantExpiry)
	}

	claims, err := m.VerifyToken(context.Background(), issued.Token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.Email != "guest@example.com" {
		t.Errorf("email = %q, want guest@example.com", claims.Email)
	}
	if claims.Name != "Guest" {
		t.Errorf("name = %q, want Guest", claims.Name)
	}
	if claims.TokenID != issued.TokenID {
		t.Errorf("token id = %q, want %q", claims.TokenID, issued.TokenID)
	}
}

func TestVerifyGarbageToken(t *testing.T) {
	m := newTestManager(t, time.Hour, newFakeDenylist())

	tests := []string{"", "not-a-token", "a.b.c"}
	for _, token := range tests {
		if _, err := m.VerifyToken(context.Background(), token); !errors.Is(
			err, core.ErrTokenInvalid,
		) {
			t.Errorf("VerifyToken(%q) error = %v, want ErrTokenInvalid", token, err)
		}
	}
}

func TestVerifyTokenSignedWithDifferentSecret(t *testing.T) {
	m1 := newTestManager(t, time.Hour, newFakeDenylist())

	m2, err := NewTokenManager(config.SessionConfig{
		Secret:      "a-completely-different-secret",
		TokenExpire: time.Hour,
	}, newFakeDenylist())
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	issued, err := m2.Issue("guest@example.com", "Guest")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := m1.VerifyToken(context.Background(), issued.Token); !errors.Is(
		err, core.ErrTokenInvalid,
	) {
		t.Errorf("error = %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	m := newTestManager(t, -time.Hour, newFakeDenylist())

	issued, err := m.Issue("guest@example.com", "Guest")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := m.VerifyToken(context.Background(), issued.Token); !errors.Is(
		err, core.ErrTokenExpired,
	) {
		t.Errorf("error = %v, want ErrTokenExpired", err)
	}
}

func TestRevokedTokenIsRejected(t *testing.T) {
	dl := newFakeDenylist()
	m := newTestManager(t, time.Hour, dl)

	issued, err := m.Issue("guest@example.com", "Guest")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := m.VerifyToken(context.Background(), issued.Token); err != nil {
		t.Fatalf("VerifyToken before revoke: %v", err)
	}

	if err := m.RevokeToken(context.Background(), issued.Token); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	if !dl.revoked[issued.TokenID] {
		t.Fatal("token id not recorded in denylist")
	}

	if _, err := m.VerifyToken(context.Background(), issued.Token); !errors.Is(
		err, core.ErrTokenRevoked,
	) {
		t.Errorf("error after revoke = %v, want ErrTokenRevoked", err)
	}
}

func TestVerifySurvivesNilDenylist(t *testing.T) {
	m := newTestManager(t, time.Hour, nil)

	issued, err := m.Issue("guest@example.com", "Guest")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := m.VerifyToken(context.Background(), issued.Token); err != nil {
		t.Errorf("VerifyToken: %v", err)
	}
}
