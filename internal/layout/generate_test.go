package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatBlockIDsAndPitch(t *testing.T) {
	items := SeatBlock(100, 200, 2, 3, 'A', 1)
	require.Len(t, items, 6)

	assert.Equal(t, "A1", items[0].ID)
	assert.Equal(t, "A3", items[2].ID)
	assert.Equal(t, "B1", items[3].ID)

	assert.Equal(t, 100.0, items[0].X)
	assert.Equal(t, 135.0, items[1].X)
	assert.Equal(t, 235.0, items[3].Y)
	for _, it := range items {
		assert.Equal(t, KindSeat, it.Kind)
		assert.Equal(t, 30.0, it.W)
		assert.Equal(t, 30.0, it.H)
	}
}

func TestSeatBlockOffsetStart(t *testing.T) {
	items := SeatBlock(0, 0, 1, 2, 'C', 5)
	require.Len(t, items, 2)
	assert.Equal(t, "C5", items[0].ID)
	assert.Equal(t, "C6", items[1].ID)
}

func TestRoundTableSetGeometry(t *testing.T) {
	items := RoundTableSet(400, 300, "M1", 8)
	require.Len(t, items, 9)

	table := items[0]
	assert.Equal(t, "M1", table.ID)
	assert.Equal(t, KindTableRound, table.Kind)
	// radius = max(25, 5 + 8*4) = 37
	assert.Equal(t, 74.0, table.W)
	assert.Equal(t, 74.0, table.H)
	assert.InDelta(t, 400.0, table.CenterX(), 1e-9)
	assert.InDelta(t, 300.0, table.CenterY(), 1e-9)

	for i, seat := range items[1:] {
		assert.Equal(t, fmt.Sprintf("M1-%d", i+1), seat.ID)
		assert.Equal(t, "M1", seat.ParentID)
		dx := seat.CenterX() - 400
		dy := seat.CenterY() - 300
		assert.InDelta(t, 57.0, math.Hypot(dx, dy), 1e-9, "seat %d distance", i+1)
	}

	// First seat sits due east of the table and faces west.
	first := items[1]
	assert.InDelta(t, 457.0, first.CenterX(), 1e-9)
	assert.InDelta(t, 300.0, first.CenterY(), 1e-9)
	assert.InDelta(t, 90.0, first.Rotation, 1e-9)
}

func TestRoundTableSetMinimumRadius(t *testing.T) {
	items := RoundTableSet(0, 0, "T1", 2)
	// radius = max(25, 5 + 2*4) = 25
	assert.Equal(t, 50.0, items[0].W)
}

func TestRectTableSetEvenSplit(t *testing.T) {
	items := RectTableSet(400, 300, "M2", 6, false)
	require.Len(t, items, 7)

	table := items[0]
	// sideSeats = 3, w = max(70, 3*35+20) = 125, h = 60
	assert.Equal(t, 125.0, table.W)
	assert.Equal(t, 60.0, table.H)

	var front, back int
	for _, seat := range items[1:] {
		require.Equal(t, "M2", seat.ParentID)
		switch seat.Rotation {
		case 0:
			front++
			assert.Equal(t, table.Y-32, seat.Y)
		case 180:
			back++
			assert.Equal(t, table.Y+table.H+2, seat.Y)
		default:
			t.Fatalf("unexpected rotation %v on %s", seat.Rotation, seat.ID)
		}
	}
	assert.Equal(t, 3, front)
	assert.Equal(t, 3, back)
}

func TestRectTableSetOddSeatGoesFront(t *testing.T) {
	items := RectTableSet(0, 0, "M3", 5, false)
	require.Len(t, items, 6)

	var front, back int
	for _, seat := range items[1:] {
		if seat.Rotation == 180 {
			back++
		} else {
			front++
		}
	}
	assert.Equal(t, 3, front)
	assert.Equal(t, 2, back)
}

func TestRectTableSetSquare(t *testing.T) {
	items := RectTableSet(0, 0, "V1", 4, true)
	table := items[0]
	// sideSeats = 2, w = max(50, 2*35+10) = 80, square
	assert.Equal(t, 80.0, table.W)
	assert.Equal(t, table.W, table.H)
}

func TestDecorBlockCentered(t *testing.T) {
	d := DecorBlock(500, 400, KindDecorStage, 600, 100, "STAGE", 0)
	assert.Equal(t, "D-STAGE", d.ID)
	assert.Equal(t, 200.0, d.X)
	assert.Equal(t, 350.0, d.Y)
	assert.Equal(t, "STAGE", d.Label)
}

func TestBuildTemplateAll(t *testing.T) {
	for _, info := range Templates() {
		items, err := BuildTemplate(info.ID)
		require.NoError(t, err, info.ID)
		require.NotEmpty(t, items, info.ID)

		seen := make(map[string]bool)
		hasSeat := false
		for _, it := range items {
			assert.False(t, seen[it.ID], "%s: duplicate id %s", info.ID, it.ID)
			seen[it.ID] = true
			assert.True(t, InBounds(it.X, it.Y), "%s: %s out of bounds at (%v, %v)", info.ID, it.ID, it.X, it.Y)
			if it.Kind == KindSeat {
				hasSeat = true
			}
		}
		assert.True(t, hasSeat, "%s: no seats", info.ID)
	}
}

func TestBuildTemplateUnknown(t *testing.T) {
	_, err := BuildTemplate("imax")
	assert.Error(t, err)
}
