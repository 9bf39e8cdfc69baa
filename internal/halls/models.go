package halls

import (
	"time"

	"eventease/internal/layout"

	"github.com/google/uuid"
)

// Hall is a bookable room with a persisted seat map. The layout is stored
// as a JSON blob; see the layout package for the accepted shapes.
type Hall struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:255;uniqueIndex"`
	Description string    `json:"description" gorm:"type:text"`
	LayoutData  []byte    `json:"-" gorm:"type:jsonb"`

	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Hall) TableName() string {
	return "halls"
}

// DecodeLayout parses the hall's stored layout blob, upgrading legacy
// shapes on the fly.
func (h *Hall) DecodeLayout() *layout.Layout {
	return layout.Decode(h.LayoutData)
}

// SeatCount counts the bookable seats in the hall's layout.
func (h *Hall) SeatCount() int {
	count := 0
	for _, it := range h.DecodeLayout().Items {
		if it.Kind == layout.KindSeat {
			count++
		}
	}
	return count
}
