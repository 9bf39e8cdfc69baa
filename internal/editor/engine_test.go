package editor

import (
	"testing"

	"eventease/internal/layout"
	"eventease/internal/shared/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return NewSession("hall-1", &layout.Layout{
		Items: []layout.PlacedItem{},
		Zones: layout.DefaultZones(),
	})
}

func TestNewSessionDefaults(t *testing.T) {
	s := newTestSession()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, ToolView, s.Tool)
	assert.Equal(t, 0.0, s.Rotation)
	assert.Empty(t, s.Selected)
	assert.False(t, s.Dirty)
}

func TestNewSessionCopiesLayout(t *testing.T) {
	src := &layout.Layout{
		Items: []layout.PlacedItem{{ID: "A1", Kind: layout.KindSeat, ZoneID: "Z1"}},
		Zones: layout.DefaultZones(),
	}
	s := NewSession("hall-1", src)
	s.Layout.Items[0].ZoneID = "Z2"
	assert.Equal(t, "Z1", src.Items[0].ZoneID)
}

func TestSetToolResetsRotationAndSelection(t *testing.T) {
	s := newTestSession()
	s.Rotation = 90
	s.Selected = []string{"A1"}

	require.NoError(t, s.SetTool(ToolAddSeat, ToolConfig{}))
	assert.Equal(t, ToolAddSeat, s.Tool)
	assert.Equal(t, 0.0, s.Rotation)
	assert.Empty(t, s.Selected)
}

func TestSetToolRejectsUnknownMode(t *testing.T) {
	s := newTestSession()
	err := s.SetTool(ToolMode("paint"), ToolConfig{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSetToolRejectsUnknownZone(t *testing.T) {
	s := newTestSession()
	err := s.SetTool(ToolAddSeat, ToolConfig{ZoneID: "Z9"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestSetToolFillsDecorDefaults(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetTool(ToolAddDecor, ToolConfig{Decor: layout.KindDecorBar, Label: "  back bar "}))
	assert.Equal(t, "BACK BAR", s.Config.Label)
	assert.Equal(t, 120.0, s.Config.W)
	assert.Equal(t, 40.0, s.Config.H)

	require.NoError(t, s.SetTool(ToolAddDecor, ToolConfig{Decor: layout.KindDecorStage}))
	assert.Equal(t, "STAGE", s.Config.Label)
}

func TestRotateStepWraps(t *testing.T) {
	s := newTestSession()
	for i := 1; i < 8; i++ {
		assert.Equal(t, float64(i*45), s.RotateStep())
	}
	assert.Equal(t, 0.0, s.RotateStep())
}

func TestClickOutOfBoundsIgnored(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetTool(ToolAddSeat, ToolConfig{}))

	result := s.Click(-10, 50)
	assert.Empty(t, result.Placed)
	assert.Empty(t, s.Layout.Items)
	assert.False(t, s.Dirty)
}

func TestClickPlacesSeat(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetTool(ToolAddSeat, ToolConfig{ZoneID: "Z2"}))

	result := s.Click(400, 300)
	require.Len(t, result.Placed, 1)

	seat := result.Placed[0]
	assert.Equal(t, "S1", seat.ID)
	assert.Equal(t, "Z2", seat.ZoneID)
	assert.InDelta(t, 400.0, seat.CenterX(), 1e-9)
	assert.InDelta(t, 300.0, seat.CenterY(), 1e-9)
	assert.True(t, s.Dirty)

	result = s.Click(500, 300)
	assert.Equal(t, "S2", result.Placed[0].ID)
}

func TestClickPlacesRoundTableWithRotation(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetTool(ToolTableRound, ToolConfig{Seats: 6}))
	s.RotateStep()

	result := s.Click(400, 300)
	require.Len(t, result.Placed, 7)

	table := result.Placed[0]
	assert.Equal(t, "M1", table.ID)
	// Rotation pivots on the click point, which is the table center, so the
	// table itself does not move.
	assert.InDelta(t, 400.0, table.CenterX(), 1e-9)
	assert.InDelta(t, 300.0, table.CenterY(), 1e-9)
	assert.InDelta(t, 45.0, table.Rotation, 1e-9)

	for _, seat := range result.Placed[1:] {
		assert.Equal(t, "M1", seat.ParentID)
		assert.Equal(t, layout.DefaultZoneID, seat.ZoneID)
	}

	result = s.Click(600, 300)
	assert.Equal(t, "M2", result.Placed[0].ID)
}

func TestClickPlacesRectTable(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetTool(ToolTableRect, ToolConfig{Seats: 5, ZoneID: "Z2"}))

	result := s.Click(400, 300)
	require.Len(t, result.Placed, 6)
	assert.Equal(t, "M1", result.Placed[0].ID)
	for _, seat := range result.Placed[1:] {
		assert.Equal(t, "Z2", seat.ZoneID)
	}
}

func TestClickPlacesDecorWithLabelScopedIDs(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetTool(ToolAddDecor, ToolConfig{Decor: layout.KindDecorBar, Label: "BAR"}))

	first := s.Click(200, 200)
	second := s.Click(600, 200)
	require.Len(t, first.Placed, 1)
	require.Len(t, second.Placed, 1)
	assert.Equal(t, "D-BAR1", first.Placed[0].ID)
	assert.Equal(t, "D-BAR2", second.Placed[0].ID)
	assert.Empty(t, first.Placed[0].ZoneID)
}

func TestClickDeleteCascadesToParentTable(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetTool(ToolTableRound, ToolConfig{Seats: 6}))
	placed := s.Click(400, 300)
	require.Len(t, placed.Placed, 7)

	require.NoError(t, s.SetTool(ToolDelete, ToolConfig{}))

	// Click on one of the generated seats: the whole table set goes.
	seat := placed.Placed[1]
	result := s.Click(seat.CenterX(), seat.CenterY())
	assert.Len(t, result.Removed, 7)
	assert.Empty(t, s.Layout.Items)
}

func TestClickDeleteEmptyCanvasIgnored(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetTool(ToolDelete, ToolConfig{}))

	result := s.Click(800, 450)
	assert.Empty(t, result.Removed)
	assert.False(t, s.Dirty)
}

func TestClickDeleteDropsRemovedFromSelection(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetTool(ToolAddSeat, ToolConfig{}))
	placed := s.Click(400, 300)
	seat := placed.Placed[0]
	s.Selected = []string{seat.ID}

	require.NoError(t, s.SetTool(ToolDelete, ToolConfig{}))
	s.Selected = []string{seat.ID}
	s.Click(seat.CenterX(), seat.CenterY())
	assert.Empty(t, s.Selected)
}

func TestViewClickTogglesSeatSelection(t *testing.T) {
	s := newTestSession()
	s.Layout.Items = []layout.PlacedItem{
		{ID: "A1", Kind: layout.KindSeat, X: 100, Y: 100, W: 30, H: 30, ZoneID: "Z1"},
		{ID: "D-STAGE1", Kind: layout.KindDecorStage, X: 300, Y: 100, W: 200, H: 80},
	}

	result := s.Click(115, 115)
	assert.Equal(t, []string{"A1"}, result.Selected)

	result = s.Click(115, 115)
	assert.Empty(t, result.Selected)

	// Decor is not selectable.
	result = s.Click(400, 140)
	assert.Empty(t, result.Selected)
}

func TestSetSelectionFiltersNonSeats(t *testing.T) {
	s := newTestSession()
	s.Layout.Items = []layout.PlacedItem{
		{ID: "A1", Kind: layout.KindSeat, ZoneID: "Z1"},
		{ID: "M1", Kind: layout.KindTableRound},
	}

	selected := s.SetSelection([]string{"A1", "M1", "A1", "missing"})
	assert.Equal(t, []string{"A1"}, selected)
}

func TestGhostPreviewsWithoutMutating(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SetTool(ToolTableRound, ToolConfig{Seats: 4}))

	ghost := s.Ghost(400, 300)
	assert.Len(t, ghost, 5)
	assert.Empty(t, s.Layout.Items)
	assert.False(t, s.Dirty)
}

func TestGhostEmptyForNonPlacementTools(t *testing.T) {
	s := newTestSession()
	assert.Nil(t, s.Ghost(400, 300))

	require.NoError(t, s.SetTool(ToolDelete, ToolConfig{}))
	assert.Nil(t, s.Ghost(400, 300))

	require.NoError(t, s.SetTool(ToolAddSeat, ToolConfig{}))
	assert.Nil(t, s.Ghost(-5, 300))
}
