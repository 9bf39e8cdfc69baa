package bookings

// Status is a booking's lifecycle state. Only confirmed bookings hold
// their seats; cancelling releases them for rebooking.
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

func (s Status) CanBeCancelled() bool {
	return s == StatusConfirmed
}
