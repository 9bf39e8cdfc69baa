package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"eventease/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// CreateExclusive inserts the booking after re-checking its seats
	// against every confirmed booking for the event, all under a lock on
	// the event row. Losing the check returns a ConflictError naming the
	// contested seats.
	CreateExclusive(ctx context.Context, booking *Booking) error

	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) ([]Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)
	GetReservedSeats(ctx context.Context, eventID uuid.UUID) ([]string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// lockedEvent is the slice of the event row the booking path reads under
// the lock.
type lockedEvent struct {
	ID     uuid.UUID `gorm:"column:id"`
	Status string    `gorm:"column:status"`
}

// lockEventQuery selects the booking's event row FOR UPDATE so two
// bookings for the same event serialize on the row lock instead of both
// passing the seat check.
func lockEventQuery(tx *gorm.DB, eventID uuid.UUID) *gorm.DB {
	return tx.Table("events").
		Select("id, status").
		Where("id = ?", eventID).
		Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *repository) CreateExclusive(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event lockedEvent
		err := lockEventQuery(tx, booking.EventID).First(&event).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to lock event: %w", err)
		}

		if event.Status != "published" {
			return apperrors.NewValidation("event is not open for booking")
		}

		var existing []Booking
		if err := tx.Where("event_id = ? AND status = ?", booking.EventID, StatusConfirmed).
			Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load existing bookings: %w", err)
		}

		if conflicts := contestedSeats(booking.Seats, existing); len(conflicts) > 0 {
			return apperrors.NewConflict(conflicts)
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

// contestedSeats intersects the requested seats with the union of every
// existing confirmed booking's seats. The result is sorted for stable
// error messages.
func contestedSeats(requested SeatList, existing []Booking) []string {
	reserved := make(map[string]bool)
	for _, b := range existing {
		for _, seat := range b.Seats {
			reserved[seat] = true
		}
	}

	seen := make(map[string]bool)
	var conflicts []string
	for _, seat := range requested {
		if reserved[seat] && !seen[seat] {
			conflicts = append(conflicts, seat)
			seen[seat] = true
		}
	}
	sort.Strings(conflicts)
	return conflicts
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Booking{}).Where("user_id = ?", userID)
	if query.Status != "" {
		baseQuery = baseQuery.Where("status = ?", query.Status)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

func (r *repository) GetReservedSeats(ctx context.Context, eventID uuid.UUID) ([]string, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Select("seats").
		Where("event_id = ? AND status = ?", eventID, StatusConfirmed).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	reserved := []string{}
	for _, b := range bookings {
		for _, seat := range b.Seats {
			if !seen[seat] {
				reserved = append(reserved, seat)
				seen[seat] = true
			}
		}
	}
	sort.Strings(reserved)
	return reserved, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, cancelledAt *time.Time) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if cancelledAt != nil {
		updates["cancelled_at"] = *cancelledAt
	}

	return r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// CalculateTotalPages is shared by the paginated booking listings.
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}
