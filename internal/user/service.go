// PrinceMahmood | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/princemahmood117/stayvista-server/internal/core"
	"github.com/princemahmood117/stayvista-server/internal/notify"
)

const (
	welcomeSubject = "Welcome to Stay Vista"
	welcomeBody    = "Hope you find your desired room"
)

type Service struct {
	repo     Repository
	notifier notify.Notifier
	logger   *slog.Logger
}

func NewService(
	repo Repository,
	notifier notify.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// SaveOnLogin is the login bootstrap. First sight of an email creates the
// record and sends the welcome mail; a returning user with a pending host
// request gets only their status updated; any other repeat login is a no-op
// that returns the stored record unchanged.
func (s *Service) SaveOnLogin(
	ctx context.Context,
	req *SaveUserRequest,
) (*User, error) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("save user: %w", err)
	}

	if existing != nil {
		if req.Status == StatusRequested {
			updated, err := s.repo.UpdateStatus(ctx, req.Email, StatusRequested)
			if err != nil {
				return nil, fmt.Errorf("save user: %w", err)
			}
			return updated, nil
		}
		return existing, nil
	}

	u := &User{
		Email:     req.Email,
		Name:      req.Name,
		Photo:     req.Photo,
		CreatedAt: time.Now(),
	}
	if req.Role != "" {
		u.Role = &req.Role
	}
	if req.Status != "" {
		u.Status = &req.Status
	}

	if err := s.repo.Insert(ctx, u); err != nil {
		// Lost a race against a concurrent first login for the same email.
		if errors.Is(err, core.ErrDuplicateKey) {
			return s.repo.GetByEmail(ctx, req.Email)
		}
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.notifier.Dispatch(u.Email, welcomeSubject, welcomeBody)
	s.logger.Info("new user registered", "email", u.Email)

	return u, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) SetRole(
	ctx context.Context,
	email, role string,
) (*User, error) {
	return s.repo.UpdateRole(ctx, email, role)
}

// RoleByEmail reads the stored role straight from the directory. Access
// control depends on this being a fresh read on every call; do not add
// caching here.
func (s *Service) RoleByEmail(ctx context.Context, email string) (string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u.Role == nil {
		return "", nil
	}

	return *u.Role, nil
}
