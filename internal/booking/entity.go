// PrinceMahmood | 2026
// entity.go

package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID            uuid.UUID `db:"id" json:"id"`
	RoomID        uuid.UUID `db:"room_id" json:"roomId"`
	RoomTitle     string    `db:"room_title" json:"title"`
	RoomImage     string    `db:"room_image" json:"image"`
	RoomLocation  string    `db:"room_location" json:"location"`
	GuestEmail    string    `db:"guest_email" json:"guestEmail"`
	GuestName     string    `db:"guest_name" json:"guestName"`
	HostEmail     string    `db:"host_email" json:"hostEmail"`
	Price         float64   `db:"price" json:"price"`
	Date          time.Time `db:"date" json:"date"`
	TransactionID string    `db:"transaction_id" json:"transactionId"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// Sale is the slice of a booking the statistics aggregation needs.
type Sale struct {
	Price float64   `db:"price"`
	Date  time.Time `db:"date"`
}
