package constants

import "time"

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values.
// Pattern: eventease:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_SEMI_STATIC_LONG   = 4 * time.Hour    // hall layouts
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // event details
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour    // event listings
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // upcoming events
)

const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // booking lists
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // seat availability
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "eventease"
)

// ================== HALLS MODULE ==================

const (
	CACHE_KEY_HALLS_LIST  = CACHE_PREFIX + ":halls:list"
	CACHE_KEY_HALL_DETAIL = CACHE_PREFIX + ":halls:detail:uuid:" // + hall-id
	CACHE_KEY_HALL_LAYOUT = CACHE_PREFIX + ":halls:layout:uuid:" // + hall-id
)

const (
	TTL_HALLS_LIST  = TTL_SEMI_STATIC_SHORT
	TTL_HALL_DETAIL = TTL_SEMI_STATIC_MEDIUM
	TTL_HALL_LAYOUT = TTL_SEMI_STATIC_LONG
)

// ================== EVENTS MODULE ==================

const (
	CACHE_KEY_EVENTS_LIST  = CACHE_PREFIX + ":events:list"         // + :page:X:limit:Y
	CACHE_KEY_EVENT_DETAIL = CACHE_PREFIX + ":events:detail:uuid:" // + event-id
)

const (
	TTL_EVENT_LIST   = TTL_SEMI_STATIC_SHORT
	TTL_EVENT_DETAIL = TTL_SEMI_STATIC_MEDIUM
)

// ================== BOOKINGS MODULE ==================

const (
	CACHE_KEY_EVENT_SEATMAP  = CACHE_PREFIX + ":bookings:seatmap:event:" // + event-id
	CACHE_KEY_EVENT_BOOKINGS = CACHE_PREFIX + ":bookings:event:"         // + event-id
)

const (
	TTL_EVENT_SEATMAP  = TTL_DYNAMIC_SHORT
	TTL_EVENT_BOOKINGS = TTL_DYNAMIC_MEDIUM
)

// ================== EDITOR MODULE ==================

// Editor sessions are working state, not a cache: losing one loses unsaved
// edits, so the TTL is generous and refreshed on every touch.
const (
	CACHE_KEY_EDITOR_SESSION = CACHE_PREFIX + ":editor:session:" // + session-id
	TTL_EDITOR_SESSION       = 2 * time.Hour
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_EVENTS_ALL   = CACHE_PREFIX + ":events:*"
	PATTERN_INVALIDATE_BOOKINGS_ALL = CACHE_PREFIX + ":bookings:*"
)

// ================== HELPER FUNCTIONS ==================

func BuildHallLayoutKey(hallID string) string {
	return CACHE_KEY_HALL_LAYOUT + hallID
}

func BuildEventDetailKey(eventID string) string {
	return CACHE_KEY_EVENT_DETAIL + eventID
}

func BuildEventSeatmapKey(eventID string) string {
	return CACHE_KEY_EVENT_SEATMAP + eventID
}

func BuildEditorSessionKey(sessionID string) string {
	return CACHE_KEY_EDITOR_SESSION + sessionID
}
