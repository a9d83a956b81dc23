// PrinceMahmood | 2026
// dto.go

package room

// SaveRoomRequest carries a full listing for POST /room and
// PUT /room/update/{id}. The owning host identity is never taken from the
// body; it comes from the session.
type SaveRoomRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Location    string  `json:"location" validate:"omitempty,max=200"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	Price       float64 `json:"price" validate:"omitempty,gte=0"`
	TotalGuests int     `json:"guests" validate:"omitempty,gte=0"`
	Bedrooms    int     `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   int     `json:"bathrooms" validate:"omitempty,gte=0"`
	Description string  `json:"description" validate:"omitempty"`
	Image       string  `json:"image" validate:"omitempty,max=2048"`
	FromDate    string  `json:"from" validate:"omitempty,max=64"`
	ToDate      string  `json:"to" validate:"omitempty,max=64"`
	HostName    string  `json:"hostName" validate:"omitempty,max=100"`
	HostPhoto   string  `json:"hostPhoto" validate:"omitempty,max=2048"`
}

type UpdateStatusRequest struct {
	Booked *bool `json:"status" validate:"required"`
}
