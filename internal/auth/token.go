// PrinceMahmood | 2026
// token.go

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/princemahmood117/stayvista-server/internal/config"
	"github.com/princemahmood117/stayvista-server/internal/core"
	"github.com/princemahmood117/stayvista-server/internal/middleware"
)

const (
	tokenIssuer     = "stayvista-api"
	signingKeyLabel = "stayvista session token v1"
)

// Denylist records revoked token IDs until their natural expiry. Tokens are
// otherwise stateless, so this is the only server-side session state.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type TokenManager struct {
	signingKey []byte
	expire     time.Duration
	denylist   Denylist
}

func NewTokenManager(
	cfg config.SessionConfig,
	denylist Denylist,
) (*TokenManager, error) {
	key, err := core.DeriveSigningKey(cfg.Secret, signingKeyLabel)
	if err != nil {
		return nil, fmt.Errorf("new token manager: %w", err)
	}

	return &TokenManager{
		signingKey: key,
		expire:     cfg.TokenExpire,
		denylist:   denylist,
	}, nil
}

type IssuedToken struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}

func (m *TokenManager) Issue(email, name string) (*IssuedToken, error) {
	now := time.Now()
	tokenID := uuid.New().String()
	expiresAt := now.Add(m.expire)

	token, err := jwt.NewBuilder().
		JwtID(tokenID).
		Issuer(tokenIssuer).
		Subject(email).
		IssuedAt(now).
		Expiration(expiresAt).
		NotBefore(now).
		Claim("name", name).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.signingKey))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &IssuedToken{
		Token:     string(signed),
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

func (m *TokenManager) VerifyToken(
	ctx context.Context,
	tokenString string,
) (*middleware.SessionClaims, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.signingKey),
		jwt.WithValidate(true),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	tokenID, ok := token.JwtID()
	if !ok || tokenID == "" {
		return nil, fmt.Errorf(
			"verify token: missing jti: %w",
			core.ErrTokenInvalid,
		)
	}

	var name string
	//nolint:errcheck // name is optional display data
	_ = token.Get("name", &name)

	if m.denylist != nil {
		revoked, err := m.denylist.IsRevoked(ctx, tokenID)
		if err != nil {
			return nil, fmt.Errorf("verify token: %w", err)
		}
		if revoked {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
		}
	}

	return &middleware.SessionClaims{
		Email:   subject,
		Name:    name,
		TokenID: tokenID,
	}, nil
}

// RevokeToken denylists a still-valid token so logout terminates the session
// server-side instead of relying on the client discarding its cookie.
func (m *TokenManager) RevokeToken(
	ctx context.Context,
	tokenString string,
) error {
	claims, err := m.VerifyToken(ctx, tokenString)
	if err != nil {
		return err
	}

	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.signingKey),
		jwt.WithValidate(false),
	)
	if err != nil {
		return fmt.Errorf("revoke token: %w", core.ErrTokenInvalid)
	}

	expiresAt, ok := token.Expiration()
	if !ok {
		return fmt.Errorf("revoke token: missing expiry: %w", core.ErrTokenInvalid)
	}

	if m.denylist == nil {
		return nil
	}

	return m.denylist.Revoke(ctx, claims.TokenID, expiresAt)
}

func (m *TokenManager) TokenExpire() time.Duration {
	return m.expire
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}

var _ middleware.TokenVerifier = (*TokenManager)(nil)
