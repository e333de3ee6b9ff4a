package services

import (
	"time"

	"github.com/yukikurage/migration-tracker/internal/datemath"
)

// Clock supplies the calendar day every derived value is computed against.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

// NewClock creates a Clock reading the wall clock in loc.
func NewClock(loc *time.Location) Clock {
	return Clock{Now: time.Now, Location: loc}
}

// FixedClock returns a Clock that always reports the given day.
func FixedClock(day time.Time) Clock {
	return Clock{Now: func() time.Time { return day }, Location: time.UTC}
}

// Today returns the current calendar date.
func (c Clock) Today() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return datemath.Today(now(), c.Location)
}
