// PrinceMahmood | 2026
// entity.go

package room

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID          uuid.UUID `db:"id" json:"id"`
	HostEmail   string    `db:"host_email" json:"hostEmail"`
	HostName    string    `db:"host_name" json:"hostName"`
	HostPhoto   string    `db:"host_photo" json:"hostPhoto"`
	Title       string    `db:"title" json:"title"`
	Location    string    `db:"location" json:"location"`
	Category    string    `db:"category" json:"category"`
	Price       float64   `db:"price" json:"price"`
	TotalGuests int       `db:"total_guests" json:"guests"`
	Bedrooms    int       `db:"bedrooms" json:"bedrooms"`
	Bathrooms   int       `db:"bathrooms" json:"bathrooms"`
	Description string    `db:"description" json:"description"`
	Image       string    `db:"image" json:"image"`
	FromDate    string    `db:"from_date" json:"from"`
	ToDate      string    `db:"to_date" json:"to"`
	Booked      bool      `db:"booked" json:"booked"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// OwnedBy reports whether the listing belongs to the given host email.
func (r *Room) OwnedBy(email string) bool {
	return r.HostEmail == email
}
