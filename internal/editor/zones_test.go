package editor

import (
	"testing"

	"eventease/internal/layout"
	"eventease/internal/shared/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zoneTestSession() *Session {
	return NewSession("hall-1", &layout.Layout{
		Items: []layout.PlacedItem{
			{ID: "A1", Kind: layout.KindSeat, ZoneID: "Z1"},
			{ID: "A2", Kind: layout.KindSeat, ZoneID: "Z2"},
			{ID: "A3", Kind: layout.KindSeat, ZoneID: "Z2"},
			{ID: "D-STAGE1", Kind: layout.KindDecorStage},
		},
		Zones: layout.DefaultZones(),
	})
}

func TestApplyZoneRequiresSelection(t *testing.T) {
	s := zoneTestSession()
	err := s.ApplyZone("Z2")
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplyZoneRequiresKnownZone(t *testing.T) {
	s := zoneTestSession()
	s.Selected = []string{"A1"}
	err := s.ApplyZone("Z9")
	assert.True(t, apperrors.IsValidation(err))
}

func TestApplyZoneUpdatesSelectedSeatsOnly(t *testing.T) {
	s := zoneTestSession()
	s.Selected = []string{"A1", "A2"}

	require.NoError(t, s.ApplyZone("Z2"))
	assert.Equal(t, "Z2", s.Layout.FindItem("A1").ZoneID)
	assert.Equal(t, "Z2", s.Layout.FindItem("A2").ZoneID)
	assert.Equal(t, "Z2", s.Layout.FindItem("A3").ZoneID, "unselected seat untouched")
	assert.True(t, s.Dirty)
	assert.Equal(t, []string{"A1", "A2"}, s.Selected, "selection survives apply")
}

func TestAddZone(t *testing.T) {
	s := zoneTestSession()
	z, err := s.AddZone("Balcony", 75, "#AABBCC")
	require.NoError(t, err)
	assert.Equal(t, "Z3", z.ID)
	assert.Equal(t, "Balcony", z.Name)
	assert.NotNil(t, s.Layout.FindZone("Z3"))
}

func TestAddZoneValidation(t *testing.T) {
	s := zoneTestSession()

	_, err := s.AddZone("  ", 10, "")
	assert.True(t, apperrors.IsValidation(err))

	_, err = s.AddZone("Pit", -1, "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateZonePartial(t *testing.T) {
	s := zoneTestSession()
	price := 120.0
	z, err := s.UpdateZone("Z2", nil, &price, nil)
	require.NoError(t, err)
	assert.Equal(t, 120.0, z.Price)
	assert.Equal(t, "VIP", z.Name)
}

func TestUpdateZoneUnknown(t *testing.T) {
	s := zoneTestSession()
	_, err := s.UpdateZone("Z9", nil, nil, nil)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDeleteZoneReassignsSeats(t *testing.T) {
	s := zoneTestSession()
	reassigned, err := s.DeleteZone("Z2")
	require.NoError(t, err)
	assert.Equal(t, 2, reassigned)
	assert.Nil(t, s.Layout.FindZone("Z2"))
	assert.Equal(t, "Z1", s.Layout.FindItem("A2").ZoneID)
	assert.Equal(t, "Z1", s.Layout.FindItem("A3").ZoneID)
}

func TestDeleteDefaultZoneForbidden(t *testing.T) {
	s := zoneTestSession()
	_, err := s.DeleteZone(layout.DefaultZoneID)
	assert.True(t, apperrors.IsValidation(err))
	assert.NotNil(t, s.Layout.FindZone("Z1"))
}

func TestDeleteUnknownZone(t *testing.T) {
	s := zoneTestSession()
	_, err := s.DeleteZone("Z9")
	assert.True(t, apperrors.IsValidation(err))
}
