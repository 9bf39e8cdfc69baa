package halls

import (
	"context"
	"testing"

	"eventease/internal/layout"
	"eventease/internal/shared/apperrors"
	"eventease/internal/shared/constants"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	halls map[uuid.UUID]*Hall
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{halls: make(map[uuid.UUID]*Hall)}
}

func (r *fakeRepo) Create(ctx context.Context, hall *Hall) error {
	r.halls[hall.ID] = hall
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Hall, error) {
	h, ok := r.halls[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return h, nil
}

func (r *fakeRepo) GetByName(ctx context.Context, name string) (*Hall, error) {
	for _, h := range r.halls {
		if h.Name == name {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetAll(ctx context.Context, query HallListQuery) ([]Hall, int64, error) {
	var out []Hall
	for _, h := range r.halls {
		out = append(out, *h)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	h, ok := r.halls[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		h.Name = name
	}
	if desc, ok := updates["description"].(string); ok {
		h.Description = desc
	}
	return nil
}

func (r *fakeRepo) UpdateLayout(ctx context.Context, id uuid.UUID, blob []byte) error {
	h, ok := r.halls[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	h.LayoutData = blob
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.halls, id)
	return nil
}

func newTestService(repo Repository) Service {
	return &service{repo: repo}
}

func TestCreateHallFromTemplate(t *testing.T) {
	svc := newTestService(newFakeRepo())

	resp, err := svc.CreateHall(context.Background(), CreateHallRequest{
		Name:     "Screen One",
		Template: layout.TemplateCinemaSmall,
	}, uuid.New())
	require.NoError(t, err)

	// 5 rows x 2 blocks of 4 seats
	assert.Equal(t, 40, resp.SeatCount)
	require.NotNil(t, resp.Layout)
	assert.NotNil(t, resp.Layout.FindZone(layout.DefaultZoneID))
}

func TestCreateHallFromGrid(t *testing.T) {
	svc := newTestService(newFakeRepo())

	resp, err := svc.CreateHall(context.Background(), CreateHallRequest{
		Name: "Lecture Room",
		Rows: 3,
		Cols: 4,
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 12, resp.SeatCount)
}

func TestCreateHallEmptyCanvas(t *testing.T) {
	svc := newTestService(newFakeRepo())

	resp, err := svc.CreateHall(context.Background(), CreateHallRequest{Name: "Blank Slate"}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.SeatCount)
	assert.Empty(t, resp.Layout.Items)
	assert.Equal(t, layout.DefaultZones(), resp.Layout.Zones)
}

func TestCreateHallDuplicateName(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.CreateHall(context.Background(), CreateHallRequest{Name: "Screen One"}, uuid.New())
	require.NoError(t, err)

	_, err = svc.CreateHall(context.Background(), CreateHallRequest{Name: "Screen One"}, uuid.New())
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateHallUnknownTemplate(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.CreateHall(context.Background(), CreateHallRequest{
		Name:     "Mystery Hall",
		Template: layout.TemplateID("amphitheater"),
	}, uuid.New())
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetHallNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.GetHall(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetLayoutUpgradesLegacyGrid(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	id := uuid.New()
	repo.halls[id] = &Hall{
		ID:         id,
		Name:       "Old Lecture Room",
		LayoutData: []byte(`{"rows": 2, "cols": 3}`),
	}

	l, err := svc.GetLayout(context.Background(), id.String())
	require.NoError(t, err)

	seats := 0
	for _, it := range l.Items {
		if it.Kind == layout.KindSeat {
			seats++
		}
	}
	assert.Equal(t, 6, seats)
	assert.NotNil(t, l.FindZone(layout.DefaultZoneID))
}

func TestApplyTemplateKeepsZones(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.CreateHall(context.Background(), CreateHallRequest{Name: "Summit Hall"}, uuid.New())
	require.NoError(t, err)

	custom := &layout.Layout{
		Items: []layout.PlacedItem{},
		Zones: []layout.Zone{
			{ID: "Z1", Name: "General", Price: 1500, Color: "#92FCA7"},
			{ID: "Z2", Name: "VIP", Price: 3000, Color: "#ED94FF"},
		},
	}
	require.NoError(t, svc.SaveLayout(context.Background(), created.ID, custom))

	resp, err := svc.ApplyTemplate(context.Background(), created.ID, layout.TemplateConference)
	require.NoError(t, err)

	assert.Greater(t, resp.SeatCount, 0)
	z := resp.Layout.FindZone("Z2")
	require.NotNil(t, z)
	assert.Equal(t, 3000.0, z.Price)
}

func TestUpdateHallRenameChecksUniqueness(t *testing.T) {
	svc := newTestService(newFakeRepo())

	first, err := svc.CreateHall(context.Background(), CreateHallRequest{Name: "Screen One"}, uuid.New())
	require.NoError(t, err)
	_, err = svc.CreateHall(context.Background(), CreateHallRequest{Name: "Screen Two"}, uuid.New())
	require.NoError(t, err)

	taken := "Screen Two"
	_, err = svc.UpdateHall(context.Background(), first.ID, UpdateHallRequest{Name: &taken})
	assert.True(t, apperrors.IsValidation(err))

	fresh := "Screen Three"
	resp, err := svc.UpdateHall(context.Background(), first.ID, UpdateHallRequest{Name: &fresh})
	require.NoError(t, err)
	assert.Equal(t, "Screen Three", resp.Name)
}

func TestDeleteHallNotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	err := svc.DeleteHall(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveLayoutDropsEventSeatmapCaches(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := newFakeRepo()
	svc := &service{repo: repo, redisClient: client}

	id := uuid.New()
	repo.halls[id] = &Hall{ID: id, Name: "Screen One"}

	mock.ExpectKeys(constants.CACHE_KEY_HALLS_LIST + "*").SetVal([]string{})
	mock.ExpectKeys(constants.CACHE_KEY_HALL_DETAIL + id.String() + "*").SetVal([]string{})
	mock.ExpectKeys(constants.CACHE_KEY_HALL_LAYOUT + id.String() + "*").SetVal([]string{})

	seatmapKey := constants.BuildEventSeatmapKey(uuid.NewString())
	mock.ExpectKeys(constants.PATTERN_INVALIDATE_BOOKINGS_ALL).SetVal([]string{seatmapKey})
	mock.ExpectDel(seatmapKey).SetVal(1)

	err := svc.SaveLayout(context.Background(), id.String(), &layout.Layout{Zones: layout.DefaultZones()})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
