package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricingLayout() *Layout {
	return &Layout{
		Items: []PlacedItem{
			{ID: "A1", Kind: KindSeat, ZoneID: "Z1"},
			{ID: "A2", Kind: KindSeat, ZoneID: "Z2"},
			{ID: "A3", Kind: KindSeat, ZoneID: "Z1"},
			{ID: "A4", Kind: KindSeat},
			{ID: "D-STAGE1", Kind: KindDecorStage},
		},
		Zones: []Zone{
			{ID: "Z1", Name: "Standard", Price: 50, Color: "#92FCA7"},
			{ID: "Z2", Name: "VIP", Price: 100, Color: "#ED94FF"},
		},
	}
}

func TestNormalizeSeatIDs(t *testing.T) {
	got := NormalizeSeatIDs([]string{" a1 ", "B2", "", "  ", "a1"})
	assert.Equal(t, []string{"A1", "B2", "A1"}, got)
}

func TestPriceSeatsMixedZones(t *testing.T) {
	l := pricingLayout()
	assert.Equal(t, 200.0, l.PriceSeats([]string{"A1", "A2", "A3"}))
}

func TestPriceSeatsCaseAndWhitespace(t *testing.T) {
	l := pricingLayout()
	assert.Equal(t, 150.0, l.PriceSeats([]string{" a1 ", "a2", ""}))
}

func TestPriceSeatsUnknownSeatUsesDefaultZone(t *testing.T) {
	l := pricingLayout()
	assert.Equal(t, 50.0, l.PriceSeats([]string{"X9"}))
}

func TestPriceSeatsUnzonedSeatUsesDefaultZone(t *testing.T) {
	l := pricingLayout()
	assert.Equal(t, 50.0, l.PriceSeats([]string{"A4"}))
}

func TestPriceSeatsUnknownZonePricesZero(t *testing.T) {
	l := pricingLayout()
	l.Items = append(l.Items, PlacedItem{ID: "A5", Kind: KindSeat, ZoneID: "Z9"})
	assert.Equal(t, 0.0, l.PriceSeats([]string{"A5"}))
}

func TestPriceSeatsCountsDuplicates(t *testing.T) {
	l := pricingLayout()
	assert.Equal(t, 100.0, l.PriceSeats([]string{"A1", "A1"}))
}

func TestZonePricesClampsNegative(t *testing.T) {
	l := pricingLayout()
	l.Zones[1].Price = -10
	assert.Equal(t, 0.0, l.ZonePrices()["Z2"])
}

func TestSeatZonesSkipsNonSeats(t *testing.T) {
	l := pricingLayout()
	zones := l.SeatZones()
	assert.NotContains(t, zones, "D-STAGE1")
	assert.Equal(t, "Z1", zones["A4"])
	assert.Equal(t, "Z2", zones["A2"])
}

func TestPriceBreakdown(t *testing.T) {
	l := pricingLayout()
	lines, total := l.PriceBreakdown([]string{"A2", "a1", "A3"})

	require.Len(t, lines, 2)
	assert.Equal(t, "Z1", lines[0].ZoneID)
	assert.Equal(t, "Standard", lines[0].ZoneName)
	assert.Equal(t, 2, lines[0].Seats)
	assert.Equal(t, 100.0, lines[0].Subtotal)
	assert.Equal(t, "Z2", lines[1].ZoneID)
	assert.Equal(t, 1, lines[1].Seats)
	assert.Equal(t, 100.0, lines[1].Subtotal)
	assert.Equal(t, 200.0, total)
}

func TestPriceBreakdownEmpty(t *testing.T) {
	l := pricingLayout()
	lines, total := l.PriceBreakdown(nil)
	assert.Empty(t, lines)
	assert.Equal(t, 0.0, total)
}
