package bookings

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestLockEventQueryTakesRowLock(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	var event lockedEvent
	stmt := lockEventQuery(db, uuid.New()).First(&event).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "FOR UPDATE")
	assert.Contains(t, sql, "FROM `events`")
}

func TestContestedSeatsSortedAndDeduplicated(t *testing.T) {
	existing := []Booking{
		{Seats: SeatList{"B5", "C1"}},
		{Seats: SeatList{"A2", "B5"}},
	}

	conflicts := contestedSeats(SeatList{"B5", "A2", "B5", "D9"}, existing)
	assert.Equal(t, []string{"A2", "B5"}, conflicts)
}

func TestContestedSeatsNoOverlap(t *testing.T) {
	existing := []Booking{{Seats: SeatList{"A1"}}}
	assert.Empty(t, contestedSeats(SeatList{"A2", "A3"}, existing))
}

func TestContestedSeatsNoExistingBookings(t *testing.T) {
	assert.Empty(t, contestedSeats(SeatList{"A1"}, nil))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
}
