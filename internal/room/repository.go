// PrinceMahmood | 2026
// repository.go

package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/princemahmood117/stayvista-server/internal/core"
)

type Repository interface {
	List(ctx context.Context, category string) ([]Room, error)
	ListByHost(ctx context.Context, hostEmail string) ([]Room, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Room, error)
	Insert(ctx context.Context, rm *Room) error
	Update(ctx context.Context, rm *Room) (*Room, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetBooked(ctx context.Context, id uuid.UUID, booked bool) error
	Count(ctx context.Context) (int64, error)
	CountByHost(ctx context.Context, hostEmail string) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const roomColumns = `id, host_email, host_name, host_photo, title, location,
	category, price, total_guests, bedrooms, bathrooms, description, image,
	from_date, to_date, booked, created_at`

// List returns all listings, optionally filtered by category. An empty
// category means no filter.
func (r *repository) List(ctx context.Context, category string) ([]Room, error) {
	rooms := []Room{}

	if category == "" {
		query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY created_at DESC`
		if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
			return nil, fmt.Errorf("list rooms: %w", err)
		}
		return rooms, nil
	}

	query := `SELECT ` + roomColumns + `
		FROM rooms WHERE category = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rooms, query, category); err != nil {
		return nil, fmt.Errorf("list rooms by category %s: %w", category, err)
	}

	return rooms, nil
}

func (r *repository) ListByHost(
	ctx context.Context,
	hostEmail string,
) ([]Room, error) {
	query := `SELECT ` + roomColumns + `
		FROM rooms WHERE host_email = $1 ORDER BY created_at DESC`

	rooms := []Room{}
	if err := r.db.SelectContext(ctx, &rooms, query, hostEmail); err != nil {
		return nil, fmt.Errorf("list rooms for host %s: %w", hostEmail, err)
	}

	return rooms, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	var rm Room
	if err := r.db.GetContext(ctx, &rm, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get room %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("get room %s: %w", id, err)
	}

	return &rm, nil
}

func (r *repository) Insert(ctx context.Context, rm *Room) error {
	query := `
		INSERT INTO rooms (
			id, host_email, host_name, host_photo, title, location, category,
			price, total_guests, bedrooms, bathrooms, description, image,
			from_date, to_date, booked, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17
		)`

	_, err := r.db.ExecContext(ctx, query,
		rm.ID, rm.HostEmail, rm.HostName, rm.HostPhoto, rm.Title, rm.Location,
		rm.Category, rm.Price, rm.TotalGuests, rm.Bedrooms, rm.Bathrooms,
		rm.Description, rm.Image, rm.FromDate, rm.ToDate, rm.Booked,
		rm.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert room %s: %w", rm.ID, err)
	}

	return nil
}

// Update replaces the listing fields. Ownership, booked state, and
// created_at are not writable here.
func (r *repository) Update(ctx context.Context, rm *Room) (*Room, error) {
	query := `
		UPDATE rooms SET
			title = $2, location = $3, category = $4, price = $5,
			total_guests = $6, bedrooms = $7, bathrooms = $8, description = $9,
			image = $10, from_date = $11, to_date = $12
		WHERE id = $1
		RETURNING ` + roomColumns

	var updated Room
	err := r.db.GetContext(ctx, &updated, query,
		rm.ID, rm.Title, rm.Location, rm.Category, rm.Price, rm.TotalGuests,
		rm.Bedrooms, rm.Bathrooms, rm.Description, rm.Image, rm.FromDate,
		rm.ToDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update room %s: %w", rm.ID, core.ErrNotFound)
		}
		return nil, fmt.Errorf("update room %s: %w", rm.ID, err)
	}

	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete room %s: %w", id, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete room %s: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("delete room %s: %w", id, core.ErrNotFound)
	}

	return nil
}

func (r *repository) SetBooked(
	ctx context.Context,
	id uuid.UUID,
	booked bool,
) error {
	query := `UPDATE rooms SET booked = $2 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, booked)
	if err != nil {
		return fmt.Errorf("set room %s booked: %w", id, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set room %s booked: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("set room %s booked: %w", id, core.ErrNotFound)
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM rooms`); err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return n, nil
}

func (r *repository) CountByHost(
	ctx context.Context,
	hostEmail string,
) (int64, error) {
	query := `SELECT COUNT(*) FROM rooms WHERE host_email = $1`

	var n int64
	if err := r.db.GetContext(ctx, &n, query, hostEmail); err != nil {
		return 0, fmt.Errorf("count rooms for host %s: %w", hostEmail, err)
	}

	return n, nil
}
