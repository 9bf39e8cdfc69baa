package halls

import (
	"time"

	"eventease/internal/layout"
)

type HallResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SeatCount   int       `json:"seat_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HallDetailResponse struct {
	HallResponse
	Layout *layout.Layout `json:"layout"`
}

type PaginatedHalls struct {
	Halls      []HallResponse `json:"halls"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

func (h *Hall) ToResponse() HallResponse {
	return HallResponse{
		ID:          h.ID.String(),
		Name:        h.Name,
		Description: h.Description,
		SeatCount:   h.SeatCount(),
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func (h *Hall) ToDetailResponse() HallDetailResponse {
	return HallDetailResponse{
		HallResponse: h.ToResponse(),
		Layout:       h.DecodeLayout(),
	}
}
