package events

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string      `json:"name" gorm:"not null;size:255"`
	Description string      `json:"description" gorm:"type:text"`
	HallID      uuid.UUID   `json:"hall_id" gorm:"type:uuid;not null;index"`
	StartsAt    time.Time   `json:"starts_at" gorm:"not null"`
	Status      EventStatus `json:"status" gorm:"type:varchar(20);default:'draft'"`
	ImageURL    string      `json:"image_url" gorm:"size:500"`

	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Event) TableName() string {
	return "events"
}

type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,min=3,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	HallID      string    `json:"hall_id" binding:"required,uuid"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	ImageURL    string    `json:"image_url" binding:"omitempty,url"`
}

type UpdateEventRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=3,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	StartsAt    *time.Time `json:"starts_at"`
	Status      *string    `json:"status" binding:"omitempty,oneof=draft published cancelled completed"`
	ImageURL    *string    `json:"image_url" binding:"omitempty,url"`
}

type EventListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	HallID   string `form:"hall_id" binding:"omitempty,uuid"`
	Status   string `form:"status" binding:"omitempty,oneof=draft published cancelled completed"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

type EventResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	HallID      string      `json:"hall_id"`
	StartsAt    time.Time   `json:"starts_at"`
	Status      EventStatus `json:"status"`
	ImageURL    string      `json:"image_url"`
	SeatCount   int         `json:"seat_count"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type PaginatedEvents struct {
	Events     []EventResponse `json:"events"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// ToResponse converts an Event to its API shape. SeatCount is filled in
// by the service layer from the hall layout.
func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Description: e.Description,
		HallID:      e.HallID.String(),
		StartsAt:    e.StartsAt,
		Status:      e.Status,
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
