package events

import (
	"context"
	"testing"
	"time"

	"eventease/internal/layout"
	"eventease/internal/shared/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	events map[uuid.UUID]*Event

	confirmedBookings int64
	deleted           []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: make(map[uuid.UUID]*Event)}
}

func (r *fakeRepo) Create(ctx context.Context, event *Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeRepo) GetAll(ctx context.Context, query EventListQuery) ([]Event, int64, error) {
	var out []Event
	for _, e := range r.events {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"].(string); ok {
		e.Name = name
	}
	if status, ok := updates["status"].(EventStatus); ok {
		e.Status = status
	}
	if startsAt, ok := updates["starts_at"].(time.Time); ok {
		e.StartsAt = startsAt
	}
	return e, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.events, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo) CountConfirmedBookings(ctx context.Context, eventID uuid.UUID) (int64, error) {
	return r.confirmedBookings, nil
}

type fakeHalls struct {
	layouts map[string]*layout.Layout
}

func (f *fakeHalls) GetLayout(ctx context.Context, hallID string) (*layout.Layout, error) {
	l, ok := f.layouts[hallID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return l, nil
}

func newTestService(repo Repository, halls HallSource) Service {
	return &service{repo: repo, halls: halls}
}

func fixtureHall() (string, *fakeHalls) {
	hallID := uuid.NewString()
	return hallID, &fakeHalls{layouts: map[string]*layout.Layout{
		hallID: {
			Items: []layout.PlacedItem{
				{ID: "A1", Kind: layout.KindSeat, ZoneID: "Z1"},
				{ID: "A2", Kind: layout.KindSeat, ZoneID: "Z1"},
				{ID: "STAGE", Kind: layout.KindDecorStage},
			},
			Zones: layout.DefaultZones(),
		},
	}}
}

func TestCreateEventStartsAsDraft(t *testing.T) {
	repo := newFakeRepo()
	hallID, halls := fixtureHall()
	svc := newTestService(repo, halls)

	resp, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		Name:     "Tech Summit",
		HallID:   hallID,
		StartsAt: time.Now().Add(48 * time.Hour),
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, EventStatusDraft, resp.Status)
	assert.Equal(t, hallID, resp.HallID)
	// Decor does not count toward the seat total.
	assert.Equal(t, 2, resp.SeatCount)
}

func TestCreateEventRejectsPastStart(t *testing.T) {
	repo := newFakeRepo()
	hallID, halls := fixtureHall()
	svc := newTestService(repo, halls)

	_, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		Name:     "Tech Summit",
		HallID:   hallID,
		StartsAt: time.Now().Add(-time.Hour),
	}, uuid.New())
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateEventRejectsUnknownHall(t *testing.T) {
	repo := newFakeRepo()
	_, halls := fixtureHall()
	svc := newTestService(repo, halls)

	_, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		Name:     "Tech Summit",
		HallID:   uuid.NewString(),
		StartsAt: time.Now().Add(48 * time.Hour),
	}, uuid.New())
	assert.True(t, apperrors.IsValidation(err))
}

func TestGetEventNotFound(t *testing.T) {
	repo := newFakeRepo()
	_, halls := fixtureHall()
	svc := newTestService(repo, halls)

	_, err := svc.GetEvent(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateEventPublishes(t *testing.T) {
	repo := newFakeRepo()
	hallID, halls := fixtureHall()
	svc := newTestService(repo, halls)

	created, err := svc.CreateEvent(context.Background(), CreateEventRequest{
		Name:     "Tech Summit",
		HallID:   hallID,
		StartsAt: time.Now().Add(48 * time.Hour),
	}, uuid.New())
	require.NoError(t, err)

	status := string(EventStatusPublished)
	resp, err := svc.UpdateEvent(context.Background(), created.ID, UpdateEventRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, EventStatusPublished, resp.Status)
}

func TestUpdateEventRejectsCancelled(t *testing.T) {
	repo := newFakeRepo()
	hallID, halls := fixtureHall()
	svc := newTestService(repo, halls)

	id := uuid.New()
	repo.events[id] = &Event{
		ID:       id,
		Name:     "Old Gala",
		HallID:   uuid.MustParse(hallID),
		StartsAt: time.Now().Add(24 * time.Hour),
		Status:   EventStatusCancelled,
	}

	name := "New Gala"
	_, err := svc.UpdateEvent(context.Background(), id.String(), UpdateEventRequest{Name: &name})
	assert.True(t, apperrors.IsValidation(err))
}

func TestDeleteEventOnlyDrafts(t *testing.T) {
	repo := newFakeRepo()
	hallID, halls := fixtureHall()
	svc := newTestService(repo, halls)

	id := uuid.New()
	repo.events[id] = &Event{
		ID:       id,
		Name:     "Live Show",
		HallID:   uuid.MustParse(hallID),
		StartsAt: time.Now().Add(24 * time.Hour),
		Status:   EventStatusPublished,
	}

	err := svc.DeleteEvent(context.Background(), id.String())
	assert.True(t, apperrors.IsValidation(err))

	repo.events[id].Status = EventStatusDraft
	require.NoError(t, svc.DeleteEvent(context.Background(), id.String()))
	assert.Contains(t, repo.deleted, id)
}

func TestDeleteEventBlockedByBookings(t *testing.T) {
	repo := newFakeRepo()
	hallID, halls := fixtureHall()
	svc := newTestService(repo, halls)

	id := uuid.New()
	repo.events[id] = &Event{
		ID:       id,
		Name:     "Draft Show",
		HallID:   uuid.MustParse(hallID),
		StartsAt: time.Now().Add(24 * time.Hour),
		Status:   EventStatusDraft,
	}
	repo.confirmedBookings = 2

	err := svc.DeleteEvent(context.Background(), id.String())
	assert.True(t, apperrors.IsValidation(err))
}

func TestEventLayoutResolvesThroughHall(t *testing.T) {
	repo := newFakeRepo()
	hallID, halls := fixtureHall()
	svc := newTestService(repo, halls)

	id := uuid.New()
	repo.events[id] = &Event{
		ID:       id,
		Name:     "Tech Summit",
		HallID:   uuid.MustParse(hallID),
		StartsAt: time.Now().Add(24 * time.Hour),
		Status:   EventStatusPublished,
	}

	l, err := svc.EventLayout(context.Background(), id.String())
	require.NoError(t, err)
	assert.Len(t, l.Items, 3)
}

func TestEventLayoutUnknownEvent(t *testing.T) {
	repo := newFakeRepo()
	_, halls := fixtureHall()
	svc := newTestService(repo, halls)

	_, err := svc.EventLayout(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEventStatusTransitions(t *testing.T) {
	assert.True(t, EventStatusDraft.CanBeUpdated())
	assert.True(t, EventStatusPublished.CanBeUpdated())
	assert.False(t, EventStatusCancelled.CanBeUpdated())

	assert.True(t, EventStatusPublished.CanBeBooked())
	assert.False(t, EventStatusDraft.CanBeBooked())

	assert.True(t, EventStatusDraft.CanBeDeleted())
	assert.False(t, EventStatusPublished.CanBeDeleted())
	assert.False(t, EventStatus("bogus").IsValid())
}
