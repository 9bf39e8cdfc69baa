package bookings

type CreateBookingRequest struct {
	GuestName  string   `json:"guest_name" binding:"required,min=2,max=255"`
	GuestEmail string   `json:"guest_email" binding:"required,email"`
	Seats      []string `json:"seats" binding:"required,min=1"`
}

type PreviewBookingRequest struct {
	Seats []string `json:"seats" binding:"required,min=1"`
}

type BookingListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status Status `form:"status" binding:"omitempty,oneof=CONFIRMED CANCELLED"`
}
