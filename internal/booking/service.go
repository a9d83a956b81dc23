// PrinceMahmood | 2026
// service.go

package booking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/princemahmood117/stayvista-server/internal/core"
	"github.com/princemahmood117/stayvista-server/internal/notify"
	"github.com/princemahmood117/stayvista-server/internal/user"
)

const (
	guestBookedSubject = "Booking Successful"
	hostBookedSubject  = "Room got booked"
)

// UserDirectory is the slice of the user repository the ledger needs for
// authorization checks and statistics. Satisfied by user.Repository.
type UserDirectory interface {
	Count(ctx context.Context) (int64, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// RoomCatalog is the slice of the room repository the statistics need.
// Satisfied by room.Repository.
type RoomCatalog interface {
	Count(ctx context.Context) (int64, error)
	CountByHost(ctx context.Context, hostEmail string) (int64, error)
}

type Service struct {
	repo     Repository
	users    UserDirectory
	rooms    RoomCatalog
	notifier notify.Notifier
	logger   *slog.Logger
}

func NewService(
	repo Repository,
	users UserDirectory,
	rooms RoomCatalog,
	notifier notify.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		users:    users,
		rooms:    rooms,
		notifier: notifier,
		logger:   logger,
	}
}

// Create records a booking after the client has completed payment. The
// payment flow is: payment intent, client-side confirmation, then this call.
// Reserving the room and recording the booking happen in one transaction, so
// two guests racing for the same room cannot both succeed. Notifications go
// out only after the transaction commits and never affect the outcome.
func (s *Service) Create(
	ctx context.Context,
	guestEmail, guestName string,
	req *CreateBookingRequest,
) (*Booking, error) {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", core.ErrInvalidInput)
	}

	b := &Booking{
		ID:            uuid.New(),
		RoomID:        roomID,
		RoomTitle:     req.Title,
		RoomImage:     req.Image,
		RoomLocation:  req.Location,
		GuestEmail:    guestEmail,
		GuestName:     guestName,
		HostEmail:     req.HostEmail,
		Price:         req.Price,
		Date:          req.Date,
		TransactionID: req.TransactionID,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.CreateWithReservation(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		"booking_id", b.ID,
		"room_id", b.RoomID,
		"guest", guestEmail,
	)

	s.notifier.Dispatch(b.GuestEmail, guestBookedSubject, fmt.Sprintf(
		"You've successfully booked %s. Transaction Id: %s",
		b.RoomTitle, b.TransactionID,
	))
	s.notifier.Dispatch(b.HostEmail, hostBookedSubject, fmt.Sprintf(
		"Your room %s got booked by %s", b.RoomTitle, b.GuestName,
	))

	return b, nil
}

// Delete removes a booking and releases its room. Allowed for the booking's
// guest, its host, or an admin.
func (s *Service) Delete(
	ctx context.Context,
	id uuid.UUID,
	callerEmail string,
) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.GuestEmail != callerEmail && b.HostEmail != callerEmail {
		if err := s.requireAdmin(ctx, callerEmail); err != nil {
			return fmt.Errorf("delete booking %s: %w", id, err)
		}
	}

	if err := s.repo.DeleteWithRelease(ctx, id); err != nil {
		return err
	}

	s.logger.Info("booking cancelled",
		"booking_id", id,
		"room_id", b.RoomID,
		"by", callerEmail,
	)

	return nil
}

// MyBookings lists bookings made by the path email. Non-admin callers may
// only read their own.
func (s *Service) MyBookings(
	ctx context.Context,
	pathEmail, callerEmail string,
) ([]Booking, error) {
	if pathEmail != callerEmail {
		if err := s.requireAdmin(ctx, callerEmail); err != nil {
			return nil, fmt.Errorf(
				"bookings for %s requested by %s: %w", pathEmail, callerEmail, err,
			)
		}
	}

	return s.repo.ListByGuest(ctx, pathEmail)
}

// ManageBookings lists bookings received by the calling host.
func (s *Service) ManageBookings(
	ctx context.Context,
	pathEmail, callerEmail string,
) ([]Booking, error) {
	if pathEmail != callerEmail {
		return nil, fmt.Errorf(
			"host bookings for %s requested by %s: %w",
			pathEmail, callerEmail, core.ErrForbidden,
		)
	}

	return s.repo.ListByHost(ctx, pathEmail)
}

func (s *Service) AdminStats(ctx context.Context) (*AdminStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	totalRooms, err := s.rooms.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	sales, err := s.repo.Sales(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	return &AdminStats{
		TotalUsers:    totalUsers,
		TotalRooms:    totalRooms,
		TotalBookings: len(sales),
		TotalPrice:    totalPrice(sales),
		ChartData:     buildChartData(sales),
	}, nil
}

func (s *Service) HostStats(
	ctx context.Context,
	hostEmail string,
) (*HostStats, error) {
	host, err := s.users.GetByEmail(ctx, hostEmail)
	if err != nil {
		return nil, fmt.Errorf("host stats: %w", err)
	}

	totalRooms, err := s.rooms.CountByHost(ctx, hostEmail)
	if err != nil {
		return nil, fmt.Errorf("host stats: %w", err)
	}

	sales, err := s.repo.SalesByHost(ctx, hostEmail)
	if err != nil {
		return nil, fmt.Errorf("host stats: %w", err)
	}

	return &HostStats{
		HostSince:     host.CreatedAt,
		TotalRooms:    totalRooms,
		TotalBookings: len(sales),
		TotalPrice:    totalPrice(sales),
		ChartData:     buildChartData(sales),
	}, nil
}

func (s *Service) GuestStats(
	ctx context.Context,
	guestEmail string,
) (*GuestStats, error) {
	guest, err := s.users.GetByEmail(ctx, guestEmail)
	if err != nil {
		return nil, fmt.Errorf("guest stats: %w", err)
	}

	sales, err := s.repo.SalesByGuest(ctx, guestEmail)
	if err != nil {
		return nil, fmt.Errorf("guest stats: %w", err)
	}

	return &GuestStats{
		GuestSince:    guest.CreatedAt,
		TotalBookings: len(sales),
		TotalPrice:    totalPrice(sales),
		ChartData:     buildChartData(sales),
	}, nil
}

func (s *Service) requireAdmin(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return core.ErrForbidden
	}
	if !u.HasRole(user.RoleAdmin) {
		return core.ErrForbidden
	}

	return nil
}

func totalPrice(sales []Sale) float64 {
	var total float64
	for _, s := range sales {
		total += s.Price
	}

	return total
}

// buildChartData renders one ["day/month", price] row per booking after the
// ["Day", "Sales"] header, preserving insertion order.
func buildChartData(sales []Sale) [][]any {
	rows := make([][]any, 0, len(sales)+1)
	rows = append(rows, []any{"Day", "Sales"})

	for _, s := range sales {
		day := fmt.Sprintf("%d/%d", s.Date.Day(), int(s.Date.Month()))
		rows = append(rows, []any{day, s.Price})
	}

	return rows
}
