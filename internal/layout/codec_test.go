package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCurrentShape(t *testing.T) {
	blob := []byte(`{
		"items": [
			{"id": "A1", "type": "seat", "x": 10, "y": 20, "w": 30, "h": 30, "zone_id": "Z2"},
			{"id": "D-STAGE1", "type": "decor_stage", "x": 0, "y": 0, "w": 600, "h": 100}
		],
		"zones": [
			{"id": "Z1", "name": "Standard", "price": 40, "color": "#92FCA7"},
			{"id": "Z2", "name": "VIP", "price": 90, "color": "#ED94FF"}
		]
	}`)

	l := Decode(blob)
	require.Len(t, l.Items, 2)
	assert.Equal(t, "Z2", l.Items[0].ZoneID)
	require.Len(t, l.Zones, 2)
	assert.Equal(t, 40.0, l.Zones[0].Price)
}

func TestDecodeBareItemList(t *testing.T) {
	blob := []byte(`[{"id": "A1", "type": "seat", "x": 0, "y": 0, "w": 30, "h": 30}]`)

	l := Decode(blob)
	require.Len(t, l.Items, 1)
	assert.Equal(t, "Z1", l.Items[0].ZoneID, "seat without zone defaults to Z1")
	require.NotNil(t, l.FindZone("Z1"))
}

func TestDecodeLegacyGrid(t *testing.T) {
	l := Decode([]byte(`{"rows": 2, "cols": 3}`))

	require.Len(t, l.Items, 6)
	assert.NotNil(t, l.FindItem("A1"))
	assert.NotNil(t, l.FindItem("B3"))
	for _, it := range l.Items {
		assert.Equal(t, KindSeat, it.Kind)
		assert.Equal(t, "Z1", it.ZoneID)
		assert.True(t, InBounds(it.X, it.Y))
	}
	// 3 cols on a 35 pitch, 2 rows.
	assert.InDelta(t, 35.0, l.Items[1].X-l.Items[0].X, 1e-9)
	assert.InDelta(t, 35.0, l.Items[3].Y-l.Items[0].Y, 1e-9)
}

func TestDecodeMalformed(t *testing.T) {
	for _, blob := range [][]byte{nil, []byte(""), []byte("not json"), []byte(`{"items": 42}`), []byte(`[{"id":`)} {
		l := Decode(blob)
		require.NotNil(t, l)
		assert.Empty(t, l.Items)
		assert.NotNil(t, l.FindZone("Z1"))
	}
}

func TestDecodeRestoresMissingDefaultZone(t *testing.T) {
	blob := []byte(`{
		"items": [],
		"zones": [{"id": "Z5", "name": "Balcony", "price": 75, "color": "#AABBCC"}]
	}`)

	l := Decode(blob)
	require.Len(t, l.Zones, 2)
	assert.Equal(t, "Z1", l.Zones[0].ID)
	assert.Equal(t, "Z5", l.Zones[1].ID)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := &Layout{
		Items: append(RoundTableSet(400, 300, "M1", 4), SeatBlock(100, 100, 1, 2, 'A', 1)...),
		Zones: DefaultZones(),
	}
	for i := range orig.Items {
		if orig.Items[i].Kind == KindSeat {
			orig.Items[i].ZoneID = "Z2"
		}
	}

	blob, err := Encode(orig)
	require.NoError(t, err)

	back := Decode(blob)
	assert.Equal(t, orig.Items, back.Items)
	assert.Equal(t, orig.Zones, back.Zones)
}

func TestEncodeStripsZoneFromNonSeats(t *testing.T) {
	l := &Layout{
		Items: []PlacedItem{{ID: "M1", Kind: KindTableRound, ZoneID: "Z2", W: 50, H: 50}},
		Zones: DefaultZones(),
	}

	blob, err := Encode(l)
	require.NoError(t, err)

	var env struct {
		Items []PlacedItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(blob, &env))
	require.Len(t, env.Items, 1)
	assert.Empty(t, env.Items[0].ZoneID)
}
