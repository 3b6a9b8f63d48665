package domain

import (
	"encoding/json"
	"time"
)

// EventDate is an immutable value object wrapping the point in time a
// sporting event occurs. No future/past constraint is enforced here; that is
// a business rule, not a structural one.
type EventDate struct {
	value time.Time
}

// NewEventDate validates t into an EventDate. The zero time is rejected.
func NewEventDate(t time.Time) (EventDate, error) {
	if t.IsZero() {
		return EventDate{}, NewValidationError("event_date", "must be a valid timestamp")
	}
	return EventDate{value: t}, nil
}

// ParseEventDate parses an RFC 3339 timestamp into an EventDate.
func ParseEventDate(s string) (EventDate, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return EventDate{}, NewValidationError("event_date", "must be an RFC 3339 timestamp")
	}
	return NewEventDate(t)
}

// Value returns the wrapped timestamp.
func (d EventDate) Value() time.Time { return d.value }

// Format formats the date with the given layout.
func (d EventDate) Format(layout string) string { return d.value.Format(layout) }

// IsUpcoming reports whether the event date is in the future.
func (d EventDate) IsUpcoming() bool { return d.value.After(time.Now()) }

// IsPast reports whether the event date has passed.
func (d EventDate) IsPast() bool { return d.value.Before(time.Now()) }

// Equals reports whether both dates denote the same instant.
func (d EventDate) Equals(other EventDate) bool { return d.value.Equal(other.value) }

func (d EventDate) String() string { return d.value.Format(time.RFC3339) }

// MarshalJSON encodes the date as an RFC 3339 string.
func (d EventDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.value.Format(time.RFC3339))
}
