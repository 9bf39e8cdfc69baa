package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateGroupFullTurnIsIdentity(t *testing.T) {
	items := RoundTableSet(400, 300, "M1", 6)

	for _, angle := range []float64{0, 360} {
		rotated := RotateGroup(items, 400, 300, angle)
		require.Len(t, rotated, len(items))
		for i := range items {
			assert.InDelta(t, items[i].X, rotated[i].X, 1e-9, "angle %v item %s", angle, items[i].ID)
			assert.InDelta(t, items[i].Y, rotated[i].Y, 1e-9)
			assert.InDelta(t, items[i].Rotation, rotated[i].Rotation, 1e-9)
		}
	}
}

func TestRotateGroupRoundTrip(t *testing.T) {
	items := SeatBlock(100, 100, 2, 3, 'A', 1)

	rotated := RotateGroup(items, 250, 180, 45)
	back := RotateGroup(rotated, 250, 180, -45)

	require.Len(t, back, len(items))
	for i := range items {
		assert.InDelta(t, items[i].X, back[i].X, 1e-9)
		assert.InDelta(t, items[i].Y, back[i].Y, 1e-9)
		assert.InDelta(t, items[i].Rotation, back[i].Rotation, 1e-9)
	}
}

func TestRotateGroupDoesNotMutateInput(t *testing.T) {
	items := SeatBlock(0, 0, 1, 2, 'A', 1)
	origX := items[0].X

	RotateGroup(items, 0, 0, 90)
	assert.Equal(t, origX, items[0].X)
}

func TestCenterGroup(t *testing.T) {
	items := []PlacedItem{
		{ID: "A1", Kind: KindSeat, X: 0, Y: 0, W: 100, H: 100},
		{ID: "A2", Kind: KindSeat, X: 100, Y: 100, W: 100, H: 100},
	}

	centered := CenterGroup(items, 1600, 900)

	// Bounding box 200x200 centered in 1600x900.
	assert.InDelta(t, 700.0, centered[0].X, 1e-9)
	assert.InDelta(t, 350.0, centered[0].Y, 1e-9)
	assert.InDelta(t, 800.0, centered[1].X, 1e-9)
	assert.InDelta(t, 450.0, centered[1].Y, 1e-9)
}

func TestCenterGroupEmptyNoop(t *testing.T) {
	assert.Empty(t, CenterGroup(nil, 1600, 900))
}

func TestHitTestHonorsRotation(t *testing.T) {
	l := &Layout{Items: []PlacedItem{
		// A long thin bar rotated 90 degrees about its center (100, 100):
		// its rotated footprint spans x in [90, 110], y in [50, 150].
		{ID: "D-BAR1", Kind: KindDecorBar, X: 50, Y: 90, W: 100, H: 20, Rotation: 90},
	}}

	require.NotNil(t, l.HitTest(100, 140))
	assert.Nil(t, l.HitTest(140, 100), "unrotated footprint must not hit")
}

func TestHitTestPicksTopmost(t *testing.T) {
	l := &Layout{Items: []PlacedItem{
		{ID: "M1", Kind: KindTableRect, X: 0, Y: 0, W: 100, H: 100},
		{ID: "S1", Kind: KindSeat, X: 40, Y: 40, W: 30, H: 30},
	}}

	hit := l.HitTest(50, 50)
	require.NotNil(t, hit)
	assert.Equal(t, "S1", hit.ID)
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0, 0))
	assert.True(t, InBounds(1600, 900))
	assert.False(t, InBounds(-1, 10))
	assert.False(t, InBounds(10, 900.5))
}
