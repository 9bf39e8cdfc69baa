package editor

import "eventease/internal/layout"

// SessionResponse is the session state a client needs to render the
// canvas: the working layout plus the tool machine's visible state.
type SessionResponse struct {
	ID       string         `json:"id"`
	HallID   string         `json:"hall_id"`
	Layout   *layout.Layout `json:"layout"`
	Tool     ToolMode       `json:"tool"`
	Config   ToolConfig     `json:"config"`
	Rotation float64        `json:"rotation"`
	Selected []string       `json:"selected"`
	Dirty    bool           `json:"dirty"`
}

func toSessionResponse(s *Session) SessionResponse {
	return SessionResponse{
		ID:       s.ID,
		HallID:   s.HallID,
		Layout:   s.Layout,
		Tool:     s.Tool,
		Config:   s.Config,
		Rotation: s.Rotation,
		Selected: s.Selected,
		Dirty:    s.Dirty,
	}
}

type RotationResponse struct {
	Rotation float64 `json:"rotation"`
}

type GhostResponse struct {
	Items []layout.PlacedItem `json:"items"`
}

type ClickResponse struct {
	Result  ClickResult     `json:"result"`
	Session SessionResponse `json:"session"`
}

type SelectionResponse struct {
	Selected []string `json:"selected"`
}

type DeleteZoneResponse struct {
	ReassignedSeats int `json:"reassigned_seats"`
}
