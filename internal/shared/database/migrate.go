package database

import (
	"eventease/internal/bookings"
	"eventease/internal/events"
	"eventease/internal/halls"
	"eventease/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&halls.Hall{},
		&events.Event{},
		&bookings.Booking{},
	)
}
