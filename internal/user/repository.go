// PrinceMahmood | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/princemahmood117/stayvista-server/internal/core"
)

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Insert(ctx context.Context, u *User) error
	UpdateStatus(ctx context.Context, email, status string) (*User, error)
	UpdateRole(ctx context.Context, email, role string) (*User, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const userColumns = `email, name, photo, role, status, created_at`

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var u User
	if err := r.db.GetContext(ctx, &u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get user %s: %w", email, core.ErrNotFound)
		}
		return nil, fmt.Errorf("get user %s: %w", email, err)
	}

	return &u, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	users := []User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *repository) Insert(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (email, name, photo, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		u.Email, u.Name, u.Photo, u.Role, u.Status, u.CreatedAt,
	)
	if err != nil {
		if core.IsPgDuplicateKey(err) {
			return fmt.Errorf("insert user %s: %w", u.Email, core.ErrDuplicateKey)
		}
		return fmt.Errorf("insert user %s: %w", u.Email, err)
	}

	return nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	email, status string,
) (*User, error) {
	query := `
		UPDATE users SET status = $2
		WHERE email = $1
		RETURNING ` + userColumns

	var u User
	if err := r.db.GetContext(ctx, &u, query, email, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update user status %s: %w", email, core.ErrNotFound)
		}
		return nil, fmt.Errorf("update user status %s: %w", email, err)
	}

	return &u, nil
}

// UpdateRole sets the role and clears any pending host request. created_at is
// deliberately untouched so account age survives role changes.
func (r *repository) UpdateRole(
	ctx context.Context,
	email, role string,
) (*User, error) {
	query := `
		UPDATE users SET role = $2, status = NULL
		WHERE email = $1
		RETURNING ` + userColumns

	var u User
	if err := r.db.GetContext(ctx, &u, query, email, role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("update user role %s: %w", email, core.ErrNotFound)
		}
		return nil, fmt.Errorf("update user role %s: %w", email, err)
	}

	return &u, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return n, nil
}
