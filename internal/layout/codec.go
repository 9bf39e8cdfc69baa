package layout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// blobEnvelope covers every persisted layout shape: the current
// {items, zones} form and the legacy {rows, cols} auto-grid form.
type blobEnvelope struct {
	Items []PlacedItem `json:"items"`
	Zones []Zone       `json:"zones"`
	Rows  int          `json:"rows"`
	Cols  int          `json:"cols"`
}

// Decode parses a hall's stored layout blob, upgrading legacy shapes on the
// fly. Three shapes are accepted:
//
//   - {"items": [...], "zones": [...]} - current form
//   - [...]                            - legacy bare item list
//   - {"rows": R, "cols": C}           - legacy auto-generated grid
//
// A blob that fails to parse degrades to an empty layout rather than
// erroring, so one corrupted hall record cannot take down a listing.
// Decode always returns a layout whose zone table contains Z1.
func Decode(blob []byte) *Layout {
	trimmed := bytes.TrimSpace(blob)
	if len(trimmed) == 0 {
		return &Layout{Items: []PlacedItem{}, Zones: DefaultZones()}
	}

	var l Layout
	if trimmed[0] == '[' {
		var items []PlacedItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return &Layout{Items: []PlacedItem{}, Zones: DefaultZones()}
		}
		l = Layout{Items: items, Zones: DefaultZones()}
	} else {
		var env blobEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return &Layout{Items: []PlacedItem{}, Zones: DefaultZones()}
		}
		switch {
		case len(env.Items) == 0 && env.Rows > 0 && env.Cols > 0:
			l = Layout{Items: gridSeats(env.Rows, env.Cols), Zones: DefaultZones()}
		default:
			l = Layout{Items: env.Items, Zones: env.Zones}
		}
	}

	sanitize(&l)
	return &l
}

// Encode serializes a layout into its persisted {items, zones} form.
func Encode(l *Layout) ([]byte, error) {
	c := l.Clone()
	sanitize(c)
	blob, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode layout: %w", err)
	}
	return blob, nil
}

// gridSeats builds the upgraded item list for a legacy {rows, cols} hall:
// a centered grid of seats labeled "<rowLetter><colNumber>".
func gridSeats(rows, cols int) []PlacedItem {
	return Center(SeatBlock(0, 0, rows, cols, 'A', 1))
}

// sanitize enforces the model invariants after any decode or before any
// encode: items is never nil, every seat has a zone, only seats carry one,
// and the zone table always contains Z1.
func sanitize(l *Layout) {
	if l.Items == nil {
		l.Items = []PlacedItem{}
	}
	for i := range l.Items {
		if l.Items[i].Kind == KindSeat {
			if strings.TrimSpace(l.Items[i].ZoneID) == "" {
				l.Items[i].ZoneID = DefaultZoneID
			}
		} else {
			l.Items[i].ZoneID = ""
		}
	}

	if len(l.Zones) == 0 {
		l.Zones = DefaultZones()
		return
	}
	if l.FindZone(DefaultZoneID) == nil {
		l.Zones = append([]Zone{DefaultZones()[0]}, l.Zones...)
	}
}
