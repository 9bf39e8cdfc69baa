package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services. Controllers map these to HTTP
// status codes instead of matching on error strings.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// ValidationError marks a request the caller can fix. Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConflictError reports a booking attempt that lost to existing bookings.
// Seats holds the contested seat ids, sorted. Maps to 409.
type ConflictError struct {
	Seats []string
}

func (e *ConflictError) Error() string {
	return "seats already reserved: " + strings.Join(e.Seats, ", ")
}

func NewConflict(seats []string) *ConflictError {
	return &ConflictError{Seats: seats}
}

// IsConflict reports whether err is (or wraps) a ConflictError, returning
// the contested seats when it is.
func IsConflict(err error) ([]string, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Seats, true
	}
	return nil, false
}
