package editor

import (
	"strings"

	"eventease/internal/layout"
	"eventease/internal/shared/apperrors"

	"github.com/google/uuid"
)

// ToolMode is the active editor tool. It decides what a canvas click does.
type ToolMode string

const (
	ToolView       ToolMode = "view"
	ToolDelete     ToolMode = "delete"
	ToolAddSeat    ToolMode = "add_seat"
	ToolAddDecor   ToolMode = "add_decor"
	ToolTableRound ToolMode = "add_table_round"
	ToolTableRect  ToolMode = "add_table_rect"
)

// IsValid reports whether m is a known tool mode.
func (m ToolMode) IsValid() bool {
	switch m {
	case ToolView, ToolDelete, ToolAddSeat, ToolAddDecor, ToolTableRound, ToolTableRect:
		return true
	}
	return false
}

// ToolConfig carries the per-tool placement parameters. Only the fields
// relevant to the active tool are consulted.
type ToolConfig struct {
	Seats  int             `json:"seats"`   // seats per table (table tools)
	Square bool            `json:"square"`  // square variant (rect table tool)
	Decor  layout.ItemKind `json:"decor"`   // decor kind (decor tool)
	Label  string          `json:"label"`   // decor label (decor tool)
	W      float64         `json:"w"`       // decor width (decor tool)
	H      float64         `json:"h"`       // decor height (decor tool)
	ZoneID string          `json:"zone_id"` // zone assigned to newly placed seats
}

// Session is one admin's in-progress edit of a hall layout. It lives in
// Redis between requests and is only written back to the hall on save.
type Session struct {
	ID       string         `json:"id"`
	HallID   string         `json:"hall_id"`
	Layout   *layout.Layout `json:"layout"`
	Tool     ToolMode       `json:"tool"`
	Config   ToolConfig     `json:"config"`
	Rotation float64        `json:"rotation"`
	Selected []string       `json:"selected"`
	Dirty    bool           `json:"dirty"`
}

// NewSession opens an editing session over a copy of the hall's layout.
// The session starts in view mode with nothing selected.
func NewSession(hallID string, l *layout.Layout) *Session {
	return &Session{
		ID:       uuid.New().String(),
		HallID:   hallID,
		Layout:   l.Clone(),
		Tool:     ToolView,
		Config:   ToolConfig{Seats: 4, ZoneID: layout.DefaultZoneID},
		Selected: []string{},
	}
}

// SetTool switches the active tool and resets the pending rotation. The
// previous selection is cleared so a stale selection cannot leak into a
// zone apply after the admin has moved on to placing items.
func (s *Session) SetTool(mode ToolMode, cfg ToolConfig) error {
	if !mode.IsValid() {
		return apperrors.NewValidation("unknown tool: %s", mode)
	}
	if err := normalizeToolConfig(mode, &cfg, s.Layout); err != nil {
		return err
	}
	s.Tool = mode
	s.Config = cfg
	s.Rotation = 0
	s.Selected = []string{}
	return nil
}

// RotateStep advances the pending placement rotation by 45 degrees.
func (s *Session) RotateStep() float64 {
	s.Rotation += 45
	for s.Rotation >= 360 {
		s.Rotation -= 360
	}
	return s.Rotation
}

func normalizeToolConfig(mode ToolMode, cfg *ToolConfig, l *layout.Layout) error {
	if cfg.ZoneID == "" {
		cfg.ZoneID = layout.DefaultZoneID
	}
	if l.FindZone(cfg.ZoneID) == nil {
		return apperrors.NewValidation("unknown zone: %s", cfg.ZoneID)
	}

	switch mode {
	case ToolTableRound, ToolTableRect:
		if cfg.Seats < 1 {
			cfg.Seats = 4
		}
		if cfg.Seats > 20 {
			return apperrors.NewValidation("table seat count %d exceeds maximum of 20", cfg.Seats)
		}
	case ToolAddDecor:
		if cfg.Decor == "" {
			cfg.Decor = layout.KindDecorGeneric
		}
		if !cfg.Decor.IsDecor() {
			return apperrors.NewValidation("invalid decor kind: %s", cfg.Decor)
		}
		cfg.Label = strings.ToUpper(strings.TrimSpace(cfg.Label))
		if cfg.Label == "" {
			cfg.Label = defaultDecorLabel(cfg.Decor)
		}
		if cfg.W <= 0 {
			cfg.W = 120
		}
		if cfg.H <= 0 {
			cfg.H = 40
		}
	}
	return nil
}

func defaultDecorLabel(kind layout.ItemKind) string {
	switch kind {
	case layout.KindDecorScreen:
		return "SCREEN"
	case layout.KindDecorStage:
		return "STAGE"
	case layout.KindDecorBar:
		return "BAR"
	}
	return "DECOR"
}
