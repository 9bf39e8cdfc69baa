package editor

import (
	"eventease/internal/layout"
)

// ClickResult describes what a canvas click changed. At most one of the
// fields is populated, depending on the active tool.
type ClickResult struct {
	Placed   []layout.PlacedItem `json:"placed,omitempty"`
	Removed  []string            `json:"removed,omitempty"`
	Selected []string            `json:"selected,omitempty"`
}

// Ghost returns the placement preview for the current tool at the given
// point: the items that a click there would add, already rotated by the
// pending rotation. Non-placement tools and out-of-bounds points preview
// nothing.
func (s *Session) Ghost(x, y float64) []layout.PlacedItem {
	if !layout.InBounds(x, y) {
		return nil
	}
	switch s.Tool {
	case ToolAddSeat, ToolAddDecor, ToolTableRound, ToolTableRect:
		return s.buildPlacement(x, y)
	}
	return nil
}

// Click applies the active tool at the given canvas point. Clicks outside
// the canvas are ignored without error, matching how a canvas swallows
// stray clicks past its edge.
func (s *Session) Click(x, y float64) ClickResult {
	if !layout.InBounds(x, y) {
		return ClickResult{}
	}

	switch s.Tool {
	case ToolView:
		return s.clickSelect(x, y)
	case ToolDelete:
		return s.clickDelete(x, y)
	case ToolAddSeat, ToolAddDecor, ToolTableRound, ToolTableRect:
		placed := s.buildPlacement(x, y)
		s.Layout.Items = append(s.Layout.Items, placed...)
		s.Dirty = true
		return ClickResult{Placed: placed}
	}
	return ClickResult{}
}

// clickSelect toggles the seat under the cursor in the selection set.
// Clicking empty canvas or a non-seat leaves the selection alone.
func (s *Session) clickSelect(x, y float64) ClickResult {
	hit := s.Layout.HitTest(x, y)
	if hit == nil || hit.Kind != layout.KindSeat {
		return ClickResult{Selected: s.Selected}
	}

	for i, id := range s.Selected {
		if id == hit.ID {
			s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
			return ClickResult{Selected: s.Selected}
		}
	}
	s.Selected = append(s.Selected, hit.ID)
	return ClickResult{Selected: s.Selected}
}

// clickDelete removes the item under the cursor. Hitting a generated seat
// resolves to its parent table, so the whole table set goes together.
func (s *Session) clickDelete(x, y float64) ClickResult {
	hit := s.Layout.HitTest(x, y)
	if hit == nil {
		return ClickResult{}
	}

	target := hit.ID
	if hit.ParentID != "" {
		target = hit.ParentID
	}

	removed := collectCascadeIDs(s.Layout, target)
	s.Layout.RemoveCascade(target)
	s.Selected = withoutIDs(s.Selected, removed)
	s.Dirty = true
	return ClickResult{Removed: removed}
}

// SetSelection replaces the selection with the given seat ids, dropping
// ids that are not seats in the layout.
func (s *Session) SetSelection(ids []string) []string {
	selected := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if it := s.Layout.FindItem(id); it != nil && it.Kind == layout.KindSeat {
			selected = append(selected, id)
			seen[id] = true
		}
	}
	s.Selected = selected
	return s.Selected
}

// ClearSelection empties the selection set.
func (s *Session) ClearSelection() {
	s.Selected = []string{}
}

// buildPlacement generates the item set for the active placement tool,
// centered on the click point and rotated by the pending rotation. Fresh
// ids are assigned against the current layout.
func (s *Session) buildPlacement(x, y float64) []layout.PlacedItem {
	var items []layout.PlacedItem

	switch s.Tool {
	case ToolAddSeat:
		items = []layout.PlacedItem{{
			ID:     layout.NextID("S", s.Layout.Items),
			Kind:   layout.KindSeat,
			X:      x - layout.SeatSize/2,
			Y:      y - layout.SeatSize/2,
			W:      layout.SeatSize,
			H:      layout.SeatSize,
			ZoneID: s.Config.ZoneID,
		}}

	case ToolTableRound:
		tableID := layout.NextID("M", s.Layout.Items)
		items = layout.RoundTableSet(x, y, tableID, s.Config.Seats)

	case ToolTableRect:
		tableID := layout.NextID("M", s.Layout.Items)
		items = layout.RectTableSet(x, y, tableID, s.Config.Seats, s.Config.Square)

	case ToolAddDecor:
		d := layout.DecorBlock(x, y, s.Config.Decor, s.Config.W, s.Config.H, s.Config.Label, 0)
		d.ID = layout.NextID("D-"+s.Config.Label, s.Layout.Items)
		items = []layout.PlacedItem{d}

	default:
		return nil
	}

	for i := range items {
		if items[i].Kind == layout.KindSeat {
			items[i].ZoneID = s.Config.ZoneID
		}
	}
	return layout.RotateGroup(items, x, y, s.Rotation)
}

func collectCascadeIDs(l *layout.Layout, id string) []string {
	ids := []string{}
	if l.FindItem(id) != nil {
		ids = append(ids, id)
	}
	for _, it := range l.Items {
		if it.ParentID == id {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func withoutIDs(selected, removed []string) []string {
	gone := make(map[string]bool, len(removed))
	for _, id := range removed {
		gone[id] = true
	}
	kept := selected[:0]
	for _, id := range selected {
		if !gone[id] {
			kept = append(kept, id)
		}
	}
	return kept
}
