package editor

import "eventease/internal/layout"

type OpenSessionRequest struct {
	HallID string `json:"hall_id" binding:"required,uuid"`
}

type SetToolRequest struct {
	Tool   ToolMode        `json:"tool" binding:"required"`
	Seats  int             `json:"seats"`
	Square bool            `json:"square"`
	Decor  layout.ItemKind `json:"decor"`
	Label  string          `json:"label"`
	W      float64         `json:"w"`
	H      float64         `json:"h"`
	ZoneID string          `json:"zone_id"`
}

func (r SetToolRequest) toConfig() ToolConfig {
	return ToolConfig{
		Seats:  r.Seats,
		Square: r.Square,
		Decor:  r.Decor,
		Label:  r.Label,
		W:      r.W,
		H:      r.H,
		ZoneID: r.ZoneID,
	}
}

type PointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SelectionRequest struct {
	SeatIDs []string `json:"seat_ids" binding:"required"`
}

type ApplyZoneRequest struct {
	ZoneID string `json:"zone_id" binding:"required"`
}

type AddZoneRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
	Color string  `json:"color" binding:"omitempty,zonecolor"`
}

type UpdateZoneRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Color *string  `json:"color" binding:"omitempty,zonecolor"`
}
