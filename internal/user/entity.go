// PrinceMahmood | 2026
// entity.go

package user

import "time"

// Role values stored in the directory. A user whose host request is pending
// keeps their current role and carries StatusRequested until an admin acts.
const (
	RoleGuest = "guest"
	RoleHost  = "host"
	RoleAdmin = "admin"

	StatusRequested = "Requested"
)

type User struct {
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Photo     string    `db:"photo" json:"photo"`
	Role      *string   `db:"role" json:"role"`
	Status    *string   `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"timestamp"`
}

// HasRole reports whether the stored role matches exactly. A NULL role never
// matches anything.
func (u *User) HasRole(role string) bool {
	return u.Role != nil && *u.Role == role
}
