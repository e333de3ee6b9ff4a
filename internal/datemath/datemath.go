// Package datemath holds the calendar-date helpers shared by the dashboard
// derivations. Dates are plain calendar days: every value returned here is
// midnight UTC of that day, so differences are always whole days.
package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the canonical date format (YYYY-MM-DD).
const Layout = "2006-01-02"

// looseLayout also accepts months and days without zero padding.
const looseLayout = "2006-1-2"

// ParseError reports a date string that does not match Layout.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses a YYYY-MM-DD string into a calendar date. Month and day
// may omit their leading zero, as in 2024-1-5.
func Parse(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	t, err := time.Parse(Layout, trimmed)
	if err == nil {
		return t, nil
	}
	if loose, looseErr := time.Parse(looseLayout, trimmed); looseErr == nil {
		return loose, nil
	}
	return time.Time{}, &ParseError{Value: value, Err: err}
}

// ParseOptional parses an optional date field. A nil, blank or malformed
// value is reported as absent.
func ParseOptional(value *string) (time.Time, bool) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return time.Time{}, false
	}
	t, err := Parse(*value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysBetween returns b - a in whole days. The result is negative when b is
// before a. Both values are midnight UTC, so the span is an exact multiple
// of a day and is not bounded by time.Duration.
func DaysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Today returns the calendar date of now as observed in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Format renders a calendar date using Layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}
