package layout

import (
	"regexp"
	"strconv"
	"strings"
)

// Logical canvas size in design units. All item coordinates live in this
// space regardless of how a client scales the map on screen.
const (
	CanvasWidth  = 1600.0
	CanvasHeight = 900.0
)

// Seat footprint constants shared by the generators and the grid upgrade.
const (
	SeatSize  = 30.0
	SeatGap   = 5.0
	SeatPitch = SeatSize + SeatGap
)

// DefaultZoneID is the permanent pricing zone every hall carries. It can
// never be deleted and is the fallback for seats without an assignment.
const DefaultZoneID = "Z1"

// ItemKind is the closed set of element types that can appear on a seat map.
type ItemKind string

const (
	KindSeat         ItemKind = "seat"
	KindTableRound   ItemKind = "table_round"
	KindTableRect    ItemKind = "table_rect"
	KindDecorScreen  ItemKind = "decor_screen"
	KindDecorStage   ItemKind = "decor_stage"
	KindDecorBar     ItemKind = "decor_bar"
	KindDecorGeneric ItemKind = "decor_generic"
)

// IsValid reports whether k is one of the known item kinds.
func (k ItemKind) IsValid() bool {
	switch k {
	case KindSeat, KindTableRound, KindTableRect,
		KindDecorScreen, KindDecorStage, KindDecorBar, KindDecorGeneric:
		return true
	}
	return false
}

// IsDecor reports whether k is a decorative (non-bookable, non-table) kind.
func (k ItemKind) IsDecor() bool {
	return strings.HasPrefix(string(k), "decor_")
}

// IsTable reports whether k is a table kind.
func (k ItemKind) IsTable() bool {
	return k == KindTableRound || k == KindTableRect
}

// PlacedItem is one element on a hall's seat map: a bookable seat, a table,
// or a piece of decor. Position is the top-left corner in canvas units.
type PlacedItem struct {
	ID       string   `json:"id"`
	Kind     ItemKind `json:"type"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	W        float64  `json:"w"`
	H        float64  `json:"h"`
	Rotation float64  `json:"rotation"`
	ParentID string   `json:"parent_id,omitempty"`
	Label    string   `json:"label,omitempty"`
	ZoneID   string   `json:"zone_id,omitempty"`
}

// CenterX returns the x coordinate of the item's center.
func (p PlacedItem) CenterX() float64 { return p.X + p.W/2 }

// CenterY returns the y coordinate of the item's center.
func (p PlacedItem) CenterY() float64 { return p.Y + p.H/2 }

// Zone is a pricing and coloring class for seats.
type Zone struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Color string  `json:"color"`
}

// Layout is the full seat map of one hall: the placed items plus the zone
// table seats reference through their zone_id.
type Layout struct {
	Items []PlacedItem `json:"items"`
	Zones []Zone       `json:"zones"`
}

// DefaultZones returns the zone table used for halls that have never been
// given one: the undeletable Z1 standard zone plus a VIP zone.
func DefaultZones() []Zone {
	return []Zone{
		{ID: "Z1", Name: "Standard", Price: 50, Color: "#92FCA7"},
		{ID: "Z2", Name: "VIP", Price: 100, Color: "#ED94FF"},
	}
}

// Clone returns a deep copy of the layout.
func (l *Layout) Clone() *Layout {
	c := &Layout{
		Items: make([]PlacedItem, len(l.Items)),
		Zones: make([]Zone, len(l.Zones)),
	}
	copy(c.Items, l.Items)
	copy(c.Zones, l.Zones)
	return c
}

// FindItem returns the item with the given id, or nil.
func (l *Layout) FindItem(id string) *PlacedItem {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i]
		}
	}
	return nil
}

// FindZone returns the zone with the given id, or nil.
func (l *Layout) FindZone(id string) *Zone {
	for i := range l.Zones {
		if l.Zones[i].ID == id {
			return &l.Zones[i]
		}
	}
	return nil
}

// RemoveCascade removes the item with the given id together with every item
// whose parent_id points at it (a table takes its generated seats with it).
// It returns the number of items removed.
func (l *Layout) RemoveCascade(id string) int {
	doomed := map[string]bool{id: true}
	for _, it := range l.Items {
		if it.ParentID == id {
			doomed[it.ID] = true
		}
	}

	kept := l.Items[:0]
	removed := 0
	for _, it := range l.Items {
		if doomed[it.ID] || (it.ParentID != "" && doomed[it.ParentID]) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	l.Items = kept
	return removed
}

// NextID returns prefix + (max numeric suffix + 1), scanning both item ids
// and parent_id back-references so a new id can never collide with a table
// that still has seats pointing at it.
func NextID(prefix string, items []PlacedItem) string {
	re := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `(\d+)`)
	max := 0
	bump := func(id string) {
		m := re.FindStringSubmatch(id)
		if m == nil {
			return
		}
		if v, err := strconv.Atoi(m[1]); err == nil && v > max {
			max = v
		}
	}
	for _, it := range items {
		bump(it.ID)
		if it.ParentID != "" {
			bump(it.ParentID)
		}
	}
	return prefix + strconv.Itoa(max+1)
}

// NextZoneID returns the first unused Z<N> zone id.
func (l *Layout) NextZoneID() string {
	max := 0
	for _, z := range l.Zones {
		id := strings.ToUpper(strings.TrimSpace(z.ID))
		if !strings.HasPrefix(id, "Z") {
			continue
		}
		if v, err := strconv.Atoi(id[1:]); err == nil && v > max {
			max = v
		}
	}
	return "Z" + strconv.Itoa(max+1)
}
