// PrinceMahmood | 2026
// dto.go

package booking

import "time"

// CreateBookingRequest is the post-payment reservation payload. The guest
// identity is taken from the session, not from the body.
type CreateBookingRequest struct {
	RoomID        string    `json:"roomId" validate:"required,uuid"`
	Title         string    `json:"title" validate:"omitempty,max=200"`
	Image         string    `json:"image" validate:"omitempty,max=2048"`
	Location      string    `json:"location" validate:"omitempty,max=200"`
	Price         float64   `json:"price" validate:"omitempty,gte=0"`
	HostEmail     string    `json:"hostEmail" validate:"required,email"`
	Date          time.Time `json:"date" validate:"required"`
	TransactionID string    `json:"transactionId" validate:"required,max=200"`
}

type AdminStats struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalRooms    int64   `json:"totalRooms"`
	TotalBookings int     `json:"totalBookings"`
	TotalPrice    float64 `json:"totalPrice"`
	ChartData     [][]any `json:"chartData"`
}

type HostStats struct {
	HostSince     time.Time `json:"hostSince"`
	TotalRooms    int64     `json:"totalRooms"`
	TotalBookings int       `json:"totalBookings"`
	TotalPrice    float64   `json:"totalPrice"`
	ChartData     [][]any   `json:"chartData"`
}

type GuestStats struct {
	GuestSince    time.Time `json:"guestSince"`
	TotalBookings int       `json:"totalBookings"`
	TotalPrice    float64   `json:"totalPrice"`
	ChartData     [][]any   `json:"chartData"`
}
