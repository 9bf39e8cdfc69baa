package bookings

import (
	"time"

	"eventease/internal/layout"
)

type BookingResponse struct {
	ID          string     `json:"id"`
	EventID     string     `json:"event_id"`
	UserID      string     `json:"user_id,omitempty"`
	GuestName   string     `json:"guest_name"`
	GuestEmail  string     `json:"guest_email"`
	Seats       []string   `json:"seats"`
	TotalPrice  float64    `json:"total_price"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:          b.ID.String(),
		EventID:     b.EventID.String(),
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		Seats:       b.Seats,
		TotalPrice:  b.TotalPrice,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		CancelledAt: b.CancelledAt,
	}
	if b.UserID != nil {
		resp.UserID = b.UserID.String()
	}
	return resp
}

// PreviewResponse is the quoted price for a seat selection before booking.
type PreviewResponse struct {
	Seats     []string              `json:"seats"`
	Breakdown []layout.ZoneLineItem `json:"breakdown"`
	Total     float64               `json:"total"`
}

// SeatmapResponse is everything a client needs to render the booking
// view: the hall layout, the zone table inside it, and which seats are
// already taken.
type SeatmapResponse struct {
	EventID       string         `json:"event_id"`
	Layout        *layout.Layout `json:"layout"`
	ReservedSeats []string       `json:"reserved_seats"`
}

type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
