package bookings

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SeatList is a booking's seat ids, stored as a JSON array column. The
// list is the normalized request list verbatim: order preserved, no
// deduplication.
type SeatList []string

func (s SeatList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SeatList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	}
	return fmt.Errorf("unsupported seat list column type %T", value)
}

// Booking reserves a set of seats for one event. Guest bookings carry a
// name and email; authenticated bookings additionally carry the user id.
type Booking struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID    uuid.UUID  `json:"event_id" gorm:"type:uuid;index;not null"`
	UserID     *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;index"`
	GuestName  string     `json:"guest_name" gorm:"not null;size:255"`
	GuestEmail string     `json:"guest_email" gorm:"not null;size:255"`
	Seats      SeatList   `json:"seats" gorm:"type:jsonb;not null"`
	TotalPrice float64    `json:"total_price" gorm:"not null;check:total_price >= 0"`
	Status     Status     `json:"status" gorm:"type:varchar(20);default:'CONFIRMED'"`

	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

func (b *Booking) Cancel() {
	now := time.Now()
	b.Status = StatusCancelled
	b.CancelledAt = &now
}
