// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"fmt"
	"time"
)

// Tod is a wall-clock time without a date.
type Tod struct{ time.Time }

// ParseStrict accepts only zero-padded 24h "HH:MM".
func ParseStrict(s string) (Tod, error) {
	if len(s) != 5 || s[2] != ':' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return Tod{}, fmt.Errorf("tod: %q is not HH:MM", s)
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Tod{}, fmt.Errorf("tod: %q: %w", s, err)
	}
	return Tod{Time: t}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Offset is the duration since midnight.
func (t Tod) Offset() time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

// On places the time of day on the calendar day of date, in the center zone.
func (t Tod) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, Location())
}

func (t Tod) String() string { return t.Format("15:04") }
