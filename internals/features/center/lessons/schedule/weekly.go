// Package schedule projects a class's weekly recurrence onto calendar dates and derives lesson
// times and statuses from it. Everything here is pure; callers supply "now".
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"steam_backend/internals/helpers/dbtime"
)

var (
	// ErrMissingTimeRange means the recurrence landed on a weekday that has no range entry.
	ErrMissingTimeRange = errors.New("schedule: no time range for weekday")
	// ErrMalformedTimeRange means a stored range is not HH:MM-HH:MM with start before end.
	ErrMalformedTimeRange = errors.New("schedule: malformed time range")
)

var weekdayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// WeeklySchedule maps a weekday name to "HH:MM-HH:MM". Keys are matched case-insensitively.
type WeeklySchedule map[string]string

type TimeRange struct {
	Start dbtime.Tod
	End   dbtime.Tod
}

// WeekdayIndex maps a weekday name to 0=Monday..6=Sunday.
func WeekdayIndex(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range weekdayNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// IsoWeekday is t's weekday with Monday as 0.
func IsoWeekday(t time.Time) int { return (int(t.Weekday()) + 6) % 7 }

// ParseTimeRange parses exactly "HH:MM-HH:MM" and requires start < end.
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrMalformedTimeRange, s)
	}
	start, err := dbtime.ParseStrict(parts[0])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrMalformedTimeRange, s)
	}
	end, err := dbtime.ParseStrict(parts[1])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %q", ErrMalformedTimeRange, s)
	}
	if start.Offset() >= end.Offset() {
		return TimeRange{}, fmt.Errorf("%w: %q start must be before end", ErrMalformedTimeRange, s)
	}
	return TimeRange{Start: start, End: end}, nil
}

// Validate is the write-time check: every key a real weekday (once), every value a valid range.
func (w WeeklySchedule) Validate() error {
	seen := make(map[int]string, len(w))
	for day, rng := range w {
		idx, ok := WeekdayIndex(day)
		if !ok {
			return fmt.Errorf("%q is not a weekday", day)
		}
		if prev, dup := seen[idx]; dup {
			return fmt.Errorf("%q duplicates %q", day, prev)
		}
		seen[idx] = day
		if _, err := ParseTimeRange(rng); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}
	return nil
}

// Normalize lower-cases and trims keys. Unknown keys are kept so Validate can still reject them.
func (w WeeklySchedule) Normalize() WeeklySchedule {
	if w == nil {
		return nil
	}
	out := make(WeeklySchedule, len(w))
	for k, v := range w {
		out[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return out
}

// Weekdays returns the recognized weekdays, ascending and de-duplicated.
func (w WeeklySchedule) Weekdays() []int {
	set := make(map[int]struct{}, len(w))
	for k := range w {
		if idx, ok := WeekdayIndex(k); ok {
			set[idx] = struct{}{}
		}
	}
	days := make([]int, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// RangeFor looks up and parses the range for a weekday (0=Monday).
func (w WeeklySchedule) RangeFor(weekday int) (TimeRange, error) {
	name := weekdayNames[weekday]
	for k, v := range w {
		if strings.ToLower(strings.TrimSpace(k)) == name {
			return ParseTimeRange(v)
		}
	}
	return TimeRange{}, fmt.Errorf("%w: %s", ErrMissingTimeRange, name)
}
