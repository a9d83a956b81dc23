// PrinceMahmood | 2026
// repository.go

package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/princemahmood117/stayvista-server/internal/core"
)

type Repository interface {
	// CreateWithReservation atomically flips the room to booked and records
	// the booking. Returns core.ErrConflict when the room is already booked.
	CreateWithReservation(ctx context.Context, b *Booking) error
	// DeleteWithRelease removes the booking and frees its room in the same
	// transaction.
	DeleteWithRelease(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListByGuest(ctx context.Context, guestEmail string) ([]Booking, error)
	ListByHost(ctx context.Context, hostEmail string) ([]Booking, error)
	Sales(ctx context.Context) ([]Sale, error)
	SalesByGuest(ctx context.Context, guestEmail string) ([]Sale, error)
	SalesByHost(ctx context.Context, hostEmail string) ([]Sale, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingColumns = `id, room_id, room_title, room_image, room_location,
	guest_email, guest_name, host_email, price, date, transaction_id,
	created_at`

func (r *repository) CreateWithReservation(
	ctx context.Context,
	b *Booking,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		// Compare-and-set on availability. Zero rows means another booking
		// won the room first.
		res, err := tx.ExecContext(ctx,
			`UPDATE rooms SET booked = TRUE WHERE id = $1 AND booked = FALSE`,
			b.RoomID,
		)
		if err != nil {
			return fmt.Errorf("reserve room %s: %w", b.RoomID, err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("reserve room %s: %w", b.RoomID, err)
		}
		if rows == 0 {
			return fmt.Errorf(
				"reserve room %s: already booked: %w", b.RoomID, core.ErrConflict,
			)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO bookings (
				id, room_id, room_title, room_image, room_location,
				guest_email, guest_name, host_email, price, date,
				transaction_id, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
			)`,
			b.ID, b.RoomID, b.RoomTitle, b.RoomImage, b.RoomLocation,
			b.GuestEmail, b.GuestName, b.HostEmail, b.Price, b.Date,
			b.TransactionID, b.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert booking %s: %w", b.ID, err)
		}

		return nil
	})
}

func (r *repository) DeleteWithRelease(
	ctx context.Context,
	id uuid.UUID,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var roomID uuid.UUID
		err := tx.GetContext(ctx, &roomID,
			`DELETE FROM bookings WHERE id = $1 RETURNING room_id`, id,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("delete booking %s: %w", id, core.ErrNotFound)
			}
			return fmt.Errorf("delete booking %s: %w", id, err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE rooms SET booked = FALSE WHERE id = $1`, roomID,
		)
		if err != nil {
			return fmt.Errorf("release room %s: %w", roomID, err)
		}

		return nil
	})
}

func (r *repository) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get booking %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("get booking %s: %w", id, err)
	}

	return &b, nil
}

func (r *repository) ListByGuest(
	ctx context.Context,
	guestEmail string,
) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings WHERE guest_email = $1 ORDER BY created_at DESC`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, guestEmail); err != nil {
		return nil, fmt.Errorf("list bookings for guest %s: %w", guestEmail, err)
	}

	return bookings, nil
}

func (r *repository) ListByHost(
	ctx context.Context,
	hostEmail string,
) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings WHERE host_email = $1 ORDER BY created_at DESC`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, hostEmail); err != nil {
		return nil, fmt.Errorf("list bookings for host %s: %w", hostEmail, err)
	}

	return bookings, nil
}

// Sales queries return price/date pairs in insertion order, which the chart
// payload preserves.

func (r *repository) Sales(ctx context.Context) ([]Sale, error) {
	query := `SELECT price, date FROM bookings ORDER BY created_at ASC`

	sales := []Sale{}
	if err := r.db.SelectContext(ctx, &sales, query); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	return sales, nil
}

func (r *repository) SalesByGuest(
	ctx context.Context,
	guestEmail string,
) ([]Sale, error) {
	query := `SELECT price, date FROM bookings
		WHERE guest_email = $1 ORDER BY created_at ASC`

	sales := []Sale{}
	if err := r.db.SelectContext(ctx, &sales, query, guestEmail); err != nil {
		return nil, fmt.Errorf("list sales for guest %s: %w", guestEmail, err)
	}

	return sales, nil
}

func (r *repository) SalesByHost(
	ctx context.Context,
	hostEmail string,
) ([]Sale, error) {
	query := `SELECT price, date FROM bookings
		WHERE host_email = $1 ORDER BY created_at ASC`

	sales := []Sale{}
	if err := r.db.SelectContext(ctx, &sales, query, hostEmail); err != nil {
		return nil, fmt.Errorf("list sales for host %s: %w", hostEmail, err)
	}

	return sales, nil
}
