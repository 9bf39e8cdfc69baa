package events

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"eventease/internal/layout"
	"eventease/internal/shared/apperrors"
	"eventease/internal/shared/constants"
	"eventease/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HallSource resolves a hall to its seat map. Implemented by the halls
// service; an interface here keeps the dependency one-way.
type HallSource interface {
	GetLayout(ctx context.Context, hallID string) (*layout.Layout, error)
}

type Service interface {
	CreateEvent(ctx context.Context, req CreateEventRequest, createdBy uuid.UUID) (*EventResponse, error)
	GetEvent(ctx context.Context, id string) (*EventResponse, error)
	GetEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error)
	UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (*EventResponse, error)
	DeleteEvent(ctx context.Context, id string) error

	// EventLayout backs the booking flow's seat map and pricing lookups.
	EventLayout(ctx context.Context, eventID string) (*layout.Layout, error)
}

type service struct {
	repo        Repository
	halls       HallSource
	redisClient *redis.Client
}

func NewService(repo Repository, halls HallSource) Service {
	return &service{
		repo:        repo,
		halls:       halls,
		redisClient: cache.Client(),
	}
}

func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest, createdBy uuid.UUID) (*EventResponse, error) {
	if req.StartsAt.Before(time.Now()) {
		return nil, apperrors.NewValidation("event start must be in the future")
	}

	hallID, err := uuid.Parse(req.HallID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid hall ID: %s", req.HallID)
	}

	// Resolving the layout doubles as an existence check on the hall.
	hallLayout, err := s.halls.GetLayout(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidation("hall %s does not exist", req.HallID)
		}
		return nil, err
	}

	event := &Event{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		HallID:      hallID,
		StartsAt:    req.StartsAt,
		Status:      EventStatusDraft,
		ImageURL:    req.ImageURL,
		CreatedBy:   createdBy,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	invalidateEventCache(ctx, s.redisClient, "")

	response := event.ToResponse()
	response.SeatCount = len(hallLayout.SeatZones())
	return &response, nil
}

func (s *service) GetEvent(ctx context.Context, id string) (*EventResponse, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NewValidation("invalid event ID: %s", id)
	}

	cacheKey := constants.BuildEventDetailKey(id)

	var cached EventResponse
	if err := getCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for event detail: %s", cacheKey)
		return &cached, nil
	}

	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	response := event.ToResponse()
	s.populateSeatCount(ctx, &response)

	if err := setCache(ctx, s.redisClient, cacheKey, response, constants.TTL_EVENT_DETAIL); err != nil {
		log.Printf("Warning: failed to cache event detail: %v", err)
	}

	return &response, nil
}

func (s *service) GetEvents(ctx context.Context, query EventListQuery) (*PaginatedEvents, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	cacheKey := fmt.Sprintf("%s:page:%d:limit:%d:status:%s:hall:%s:search:%s",
		constants.CACHE_KEY_EVENTS_LIST, query.Page, query.Limit, query.Status, query.HallID, query.Search)

	var cached PaginatedEvents
	if err := getCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for event list: %s", cacheKey)
		return &cached, nil
	}

	events, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = events[i].ToResponse()
		s.populateSeatCount(ctx, &responses[i])
	}

	result := &PaginatedEvents{
		Events:     responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}

	if err := setCache(ctx, s.redisClient, cacheKey, result, constants.TTL_EVENT_LIST); err != nil {
		log.Printf("Warning: failed to cache event list: %v", err)
	}

	return result, nil
}

func (s *service) UpdateEvent(ctx context.Context, id string, req UpdateEventRequest) (*EventResponse, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.NewValidation("invalid event ID: %s", id)
	}

	current, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if !current.Status.CanBeUpdated() {
		return nil, apperrors.NewValidation("cannot update event with status: %s", current.Status)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartsAt != nil {
		if req.StartsAt.Before(time.Now()) {
			return nil, apperrors.NewValidation("event start must be in the future")
		}
		updates["starts_at"] = *req.StartsAt
	}
	if req.Status != nil {
		status := EventStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidation("invalid event status: %s", *req.Status)
		}
		updates["status"] = status
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	updates["updated_at"] = time.Now()

	updated, err := s.repo.Update(ctx, eventID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	invalidateEventCache(ctx, s.redisClient, id)

	response := updated.ToResponse()
	s.populateSeatCount(ctx, &response)
	return &response, nil
}

func (s *service) DeleteEvent(ctx context.Context, id string) error {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.NewValidation("invalid event ID: %s", id)
	}

	current, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	if !current.Status.CanBeDeleted() {
		return apperrors.NewValidation("cannot delete event with status: %s, cancel it instead", current.Status)
	}

	bookedCount, err := s.repo.CountConfirmedBookings(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to check event bookings: %w", err)
	}
	if bookedCount > 0 {
		return apperrors.NewValidation("cannot delete event with existing bookings")
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	invalidateEventCache(ctx, s.redisClient, id)
	return nil
}

func (s *service) EventLayout(ctx context.Context, eventID string) (*layout.Layout, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid event ID: %s", eventID)
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return s.halls.GetLayout(ctx, event.HallID.String())
}

func (s *service) populateSeatCount(ctx context.Context, response *EventResponse) {
	hallLayout, err := s.halls.GetLayout(ctx, response.HallID)
	if err != nil {
		log.Printf("Warning: failed to resolve hall layout for event %s: %v", response.ID, err)
		return
	}
	response.SeatCount = len(hallLayout.SeatZones())
}
