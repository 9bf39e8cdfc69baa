package layout

import (
	"sort"
	"strings"
)

// NormalizeSeatIDs trims, upper-cases, and drops empty entries from a seat
// id list. Order and duplicates are preserved: requesting the same seat
// twice prices it twice, which the booking conflict check will then reject.
func NormalizeSeatIDs(seatIDs []string) []string {
	out := make([]string, 0, len(seatIDs))
	for _, s := range seatIDs {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ZonePrices builds the zone id -> per-seat price map. Negative prices read
// as 0 so a bad zone record can only under-charge a preview, never crash it.
func (l *Layout) ZonePrices() map[string]float64 {
	prices := make(map[string]float64, len(l.Zones))
	for _, z := range l.Zones {
		id := strings.TrimSpace(z.ID)
		if id == "" {
			continue
		}
		p := z.Price
		if p < 0 {
			p = 0
		}
		prices[id] = p
	}
	return prices
}

// SeatZones builds the normalized seat id -> zone id map from the layout's
// seat items. Seats without a zone read as Z1.
func (l *Layout) SeatZones() map[string]string {
	zones := make(map[string]string)
	for _, it := range l.Items {
		if it.Kind != KindSeat {
			continue
		}
		zid := strings.TrimSpace(it.ZoneID)
		if zid == "" {
			zid = DefaultZoneID
		}
		zones[strings.ToUpper(strings.TrimSpace(it.ID))] = zid
	}
	return zones
}

// PriceSeats sums the zone price of every requested seat occurrence. Seats
// missing from the layout price as Z1; zones missing from the zone table
// price as 0.
func (l *Layout) PriceSeats(seatIDs []string) float64 {
	prices := l.ZonePrices()
	seatZones := l.SeatZones()

	total := 0.0
	for _, sid := range NormalizeSeatIDs(seatIDs) {
		zid, ok := seatZones[sid]
		if !ok {
			zid = DefaultZoneID
		}
		total += prices[zid]
	}
	return total
}

// ZoneLineItem is one row of a per-zone price breakdown.
type ZoneLineItem struct {
	ZoneID    string  `json:"zone_id"`
	ZoneName  string  `json:"zone_name"`
	Seats     int     `json:"seats"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// PriceBreakdown groups the requested seats by zone and returns one line
// per zone, sorted by zone id, plus the grand total.
func (l *Layout) PriceBreakdown(seatIDs []string) ([]ZoneLineItem, float64) {
	prices := l.ZonePrices()
	seatZones := l.SeatZones()

	counts := make(map[string]int)
	for _, sid := range NormalizeSeatIDs(seatIDs) {
		zid, ok := seatZones[sid]
		if !ok {
			zid = DefaultZoneID
		}
		counts[zid]++
	}

	zids := make([]string, 0, len(counts))
	for zid := range counts {
		zids = append(zids, zid)
	}
	sort.Strings(zids)

	lines := make([]ZoneLineItem, 0, len(zids))
	total := 0.0
	for _, zid := range zids {
		name := zid
		if z := l.FindZone(zid); z != nil && strings.TrimSpace(z.Name) != "" {
			name = z.Name
		}
		sub := prices[zid] * float64(counts[zid])
		total += sub
		lines = append(lines, ZoneLineItem{
			ZoneID:    zid,
			ZoneName:  name,
			Seats:     counts[zid],
			UnitPrice: prices[zid],
			Subtotal:  sub,
		})
	}
	return lines, total
}
