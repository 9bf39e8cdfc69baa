package events

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusDraft, EventStatusPublished, EventStatusCancelled, EventStatusCompleted:
		return true
	}
	return false
}

func (s EventStatus) String() string {
	return string(s)
}

// CanBeUpdated reports whether the event still accepts edits.
func (s EventStatus) CanBeUpdated() bool {
	return s == EventStatusDraft || s == EventStatusPublished
}

// CanBeBooked reports whether seats may be reserved for the event.
func (s EventStatus) CanBeBooked() bool {
	return s == EventStatusPublished
}

// CanBeDeleted reports whether the event may be removed outright.
// Published events are cancelled instead so existing bookings keep a record.
func (s EventStatus) CanBeDeleted() bool {
	return s == EventStatusDraft
}
