package editor

import (
	"strings"

	"eventease/internal/layout"
	"eventease/internal/shared/apperrors"
)

// ApplyZone assigns the given zone to every currently selected seat. The
// selection survives so the admin can keep restyling the same block.
func (s *Session) ApplyZone(zoneID string) error {
	if len(s.Selected) == 0 {
		return apperrors.NewValidation("no seats selected")
	}
	if s.Layout.FindZone(zoneID) == nil {
		return apperrors.NewValidation("unknown zone: %s", zoneID)
	}

	for _, id := range s.Selected {
		if it := s.Layout.FindItem(id); it != nil && it.Kind == layout.KindSeat {
			it.ZoneID = zoneID
		}
	}
	s.Dirty = true
	return nil
}

// AddZone creates a new pricing zone with the next free Z<N> id.
func (s *Session) AddZone(name string, price float64, color string) (*layout.Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation("zone name is required")
	}
	if price < 0 {
		return nil, apperrors.NewValidation("zone price cannot be negative")
	}

	z := layout.Zone{
		ID:    s.Layout.NextZoneID(),
		Name:  name,
		Price: price,
		Color: color,
	}
	s.Layout.Zones = append(s.Layout.Zones, z)
	s.Dirty = true
	return &z, nil
}

// UpdateZone edits a zone's name, price, or color. Nil fields are left
// untouched.
func (s *Session) UpdateZone(zoneID string, name *string, price *float64, color *string) (*layout.Zone, error) {
	z := s.Layout.FindZone(zoneID)
	if z == nil {
		return nil, apperrors.NewValidation("unknown zone: %s", zoneID)
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, apperrors.NewValidation("zone name is required")
		}
		z.Name = trimmed
	}
	if price != nil {
		if *price < 0 {
			return nil, apperrors.NewValidation("zone price cannot be negative")
		}
		z.Price = *price
	}
	if color != nil {
		z.Color = *color
	}
	s.Dirty = true
	return z, nil
}

// DeleteZone removes a zone and reassigns its seats to Z1. The default
// zone itself can never be deleted.
func (s *Session) DeleteZone(zoneID string) (reassigned int, err error) {
	if zoneID == layout.DefaultZoneID {
		return 0, apperrors.NewValidation("the default zone cannot be deleted")
	}
	if s.Layout.FindZone(zoneID) == nil {
		return 0, apperrors.NewValidation("unknown zone: %s", zoneID)
	}

	for i := range s.Layout.Items {
		it := &s.Layout.Items[i]
		if it.Kind == layout.KindSeat && it.ZoneID == zoneID {
			it.ZoneID = layout.DefaultZoneID
			reassigned++
		}
	}

	kept := s.Layout.Zones[:0]
	for _, z := range s.Layout.Zones {
		if z.ID != zoneID {
			kept = append(kept, z)
		}
	}
	s.Layout.Zones = kept
	s.Dirty = true
	return reassigned, nil
}
