// PrinceMahmood | 2026
// service.go

package room

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/princemahmood117/stayvista-server/internal/core"
)

// nullCategory is the client's "no filter" placeholder. The frontend sends
// the literal string when no category is selected.
const nullCategory = "null"

// RoleReader resolves the stored role for an email. Satisfied by the user
// directory service.
type RoleReader interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

type Service struct {
	repo   Repository
	roles  RoleReader
	logger *slog.Logger
}

func NewService(repo Repository, roles RoleReader, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		roles:  roles,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context, category string) ([]Room, error) {
	if category == nullCategory || category == "undefined" {
		category = ""
	}

	return s.repo.List(ctx, category)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new listing owned by the calling host. The owner identity
// comes from the session, never from the payload.
func (s *Service) Create(
	ctx context.Context,
	hostEmail string,
	req *SaveRoomRequest,
) (*Room, error) {
	rm := &Room{
		ID:          uuid.New(),
		HostEmail:   hostEmail,
		HostName:    req.HostName,
		HostPhoto:   req.HostPhoto,
		Title:       req.Title,
		Location:    req.Location,
		Category:    req.Category,
		Price:       req.Price,
		TotalGuests: req.TotalGuests,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Description: req.Description,
		Image:       req.Image,
		FromDate:    req.FromDate,
		ToDate:      req.ToDate,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Insert(ctx, rm); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room listed", "room_id", rm.ID, "host", hostEmail)

	return rm, nil
}

func (s *Service) MyListings(
	ctx context.Context,
	pathEmail, callerEmail string,
) ([]Room, error) {
	if pathEmail != callerEmail {
		return nil, fmt.Errorf(
			"listings for %s requested by %s: %w",
			pathEmail, callerEmail, core.ErrForbidden,
		)
	}

	return s.repo.ListByHost(ctx, pathEmail)
}

// Update replaces the listing fields of a room the caller owns.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	callerEmail string,
	req *SaveRoomRequest,
) (*Room, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !existing.OwnedBy(callerEmail) {
		return nil, fmt.Errorf(
			"update room %s by %s: %w", id, callerEmail, core.ErrForbidden,
		)
	}

	existing.Title = req.Title
	existing.Location = req.Location
	existing.Category = req.Category
	existing.Price = req.Price
	existing.TotalGuests = req.TotalGuests
	existing.Bedrooms = req.Bedrooms
	existing.Bathrooms = req.Bathrooms
	existing.Description = req.Description
	existing.Image = req.Image
	existing.FromDate = req.FromDate
	existing.ToDate = req.ToDate

	return s.repo.Update(ctx, existing)
}

func (s *Service) Delete(
	ctx context.Context,
	id uuid.UUID,
	callerEmail string,
) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !existing.OwnedBy(callerEmail) {
		return fmt.Errorf(
			"delete room %s by %s: %w", id, callerEmail, core.ErrForbidden,
		)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("room removed", "room_id", id, "host", callerEmail)

	return nil
}

// SetBooked flips availability. Only the owning host or an admin may do it.
func (s *Service) SetBooked(
	ctx context.Context,
	id uuid.UUID,
	callerEmail string,
	booked bool,
) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !existing.OwnedBy(callerEmail) {
		role, err := s.roles.RoleByEmail(ctx, callerEmail)
		if err != nil {
			return fmt.Errorf("set room %s booked: %w", id, err)
		}
		if role != "admin" {
			return fmt.Errorf(
				"set room %s booked by %s: %w", id, callerEmail, core.ErrForbidden,
			)
		}
	}

	return s.repo.SetBooked(ctx, id, booked)
}
