package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes and constraints that AutoMigrate does not
// express, mostly around the booking conflict queries.
func MigrateConstraints(db *gorm.DB) error {
	// Conflict detection loads all confirmed bookings for an event.
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_event_status
		ON bookings (event_id, status);
	`).Error
	if err != nil {
		return err
	}

	// "My bookings" listing.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_id
		ON bookings (user_id);
	`).Error
	if err != nil {
		return err
	}

	// Events are browsed by hall and start time.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_events_hall_starts_at
		ON events (hall_id, starts_at);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
