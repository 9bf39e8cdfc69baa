package bookings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"eventease/internal/layout"
	"eventease/internal/shared/apperrors"
	"eventease/internal/shared/constants"
	"eventease/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// LayoutProvider resolves an event to its hall's seat map. Implemented by
// the events service; an interface here keeps the dependency one-way.
type LayoutProvider interface {
	EventLayout(ctx context.Context, eventID string) (*layout.Layout, error)
}

// Notifier publishes booking lifecycle notifications. Implemented by the
// notifications producer; nil disables publishing.
type Notifier interface {
	BookingConfirmed(ctx context.Context, booking *Booking) error
}

type Service interface {
	Seatmap(ctx context.Context, eventID string) (*SeatmapResponse, error)
	Preview(ctx context.Context, eventID string, seats []string) (*PreviewResponse, error)
	Create(ctx context.Context, eventID string, req CreateBookingRequest, userID *uuid.UUID) (*BookingResponse, error)
	GetEventBookings(ctx context.Context, eventID string) ([]BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*PaginatedBookings, error)
	Cancel(ctx context.Context, bookingID string, userID uuid.UUID, isAdmin bool) (*BookingResponse, error)
}

type service struct {
	repo        Repository
	layouts     LayoutProvider
	notifier    Notifier
	redisClient *redis.Client
}

func NewService(repo Repository, layouts LayoutProvider, notifier Notifier) Service {
	return &service{
		repo:        repo,
		layouts:     layouts,
		notifier:    notifier,
		redisClient: cache.Client(),
	}
}

func (s *service) Seatmap(ctx context.Context, eventID string) (*SeatmapResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid event ID: %s", eventID)
	}

	cacheKey := constants.BuildEventSeatmapKey(eventID)
	var cached SeatmapResponse
	if err := getCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for event seatmap: %s", cacheKey)
		return &cached, nil
	}

	l, err := s.layouts.EventLayout(ctx, eventID)
	if err != nil {
		return nil, err
	}

	reserved, err := s.repo.GetReservedSeats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load reserved seats: %w", err)
	}

	resp := &SeatmapResponse{
		EventID:       eventID,
		Layout:        l,
		ReservedSeats: reserved,
	}
	if err := setCache(ctx, s.redisClient, cacheKey, resp, constants.TTL_EVENT_SEATMAP); err != nil {
		log.Printf("Warning: failed to cache event seatmap: %v", err)
	}
	return resp, nil
}

// Preview quotes a seat selection without reserving anything. It backs
// live UI feedback, so it degrades instead of failing: an empty selection
// or an unknown event quotes a total of zero.
func (s *service) Preview(ctx context.Context, eventID string, seats []string) (*PreviewResponse, error) {
	normalized := layout.NormalizeSeatIDs(seats)

	l, err := s.layouts.EventLayout(ctx, eventID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || apperrors.IsValidation(err) {
			l = &layout.Layout{}
		} else {
			return nil, err
		}
	}

	breakdown, total := l.PriceBreakdown(normalized)
	return &PreviewResponse{
		Seats:     normalized,
		Breakdown: breakdown,
		Total:     total,
	}, nil
}

func (s *service) Create(ctx context.Context, eventID string, req CreateBookingRequest, userID *uuid.UUID) (*BookingResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid event ID: %s", eventID)
	}

	normalized := layout.NormalizeSeatIDs(req.Seats)
	if len(normalized) == 0 {
		return nil, apperrors.NewValidation("no seats requested")
	}

	l, err := s.layouts.EventLayout(ctx, eventID)
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		ID:         uuid.New(),
		EventID:    id,
		UserID:     userID,
		GuestName:  strings.TrimSpace(req.GuestName),
		GuestEmail: strings.ToLower(strings.TrimSpace(req.GuestEmail)),
		Seats:      normalized,
		TotalPrice: l.PriceSeats(normalized),
		Status:     StatusConfirmed,
	}

	if err := s.repo.CreateExclusive(ctx, booking); err != nil {
		return nil, err
	}

	s.invalidateSeatmap(ctx, eventID)

	if s.notifier != nil {
		if err := s.notifier.BookingConfirmed(ctx, booking); err != nil {
			log.Printf("Warning: failed to publish booking confirmation: %v", err)
		}
	}

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) GetEventBookings(ctx context.Context, eventID string) ([]BookingResponse, error) {
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid event ID: %s", eventID)
	}

	cacheKey := constants.CACHE_KEY_EVENT_BOOKINGS + eventID
	var cached []BookingResponse
	if err := getCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for event bookings: %s", cacheKey)
		return cached, nil
	}

	bookings, err := s.repo.GetByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list event bookings: %w", err)
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = bookings[i].ToResponse()
	}

	if err := setCache(ctx, s.redisClient, cacheKey, responses, constants.TTL_EVENT_BOOKINGS); err != nil {
		log.Printf("Warning: failed to cache event bookings: %v", err)
	}
	return responses, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) (*PaginatedBookings, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	bookings, totalCount, err := s.repo.GetUserBookings(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list user bookings: %w", err)
	}

	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = bookings[i].ToResponse()
	}

	return &PaginatedBookings{
		Bookings:   responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: CalculateTotalPages(totalCount, query.Limit),
	}, nil
}

func (s *service) Cancel(ctx context.Context, bookingID string, userID uuid.UUID, isAdmin bool) (*BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, apperrors.NewValidation("invalid booking ID: %s", bookingID)
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if !isAdmin && (booking.UserID == nil || *booking.UserID != userID) {
		return nil, apperrors.ErrForbidden
	}
	if !booking.Status.CanBeCancelled() {
		return nil, apperrors.NewValidation("booking is already cancelled")
	}

	booking.Cancel()
	if err := s.repo.UpdateStatus(ctx, id, booking.Status, booking.CancelledAt); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.invalidateSeatmap(ctx, booking.EventID.String())

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) invalidateSeatmap(ctx context.Context, eventID string) {
	if s.redisClient == nil {
		return
	}
	keys := []string{
		constants.BuildEventSeatmapKey(eventID),
		constants.CACHE_KEY_EVENT_BOOKINGS + eventID,
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Warning: failed to invalidate seatmap cache: %v", err)
	}
}
