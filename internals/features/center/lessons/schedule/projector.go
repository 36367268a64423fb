package schedule

import (
	"time"

	"steam_backend/internals/helpers/dbtime"
)

// LessonDate returns the calendar date of the nth scheduled occurrence on or after start.
// ok is false when n < 1 or the schedule names no weekday.
func LessonDate(start time.Time, weekly WeeklySchedule, n int) (time.Time, bool) {
	days := weekly.Weekdays()
	if len(days) == 0 || n < 1 {
		return time.Time{}, false
	}

	start = dbtime.CivilDate(start)
	sw := IsoWeekday(start)

	idx := -1
	for i, d := range days {
		if d >= sw {
			idx = i
			break
		}
	}

	var date time.Time
	if idx < 0 {
		idx = 0
		date = start.AddDate(0, 0, 7-sw+days[0])
	} else {
		date = start.AddDate(0, 0, days[idx]-sw)
	}

	k := len(days)
	remaining := n - 1
	date = date.AddDate(0, 0, 7*(remaining/k))

	for step := 0; step < remaining%k; step++ {
		next := idx + 1
		if next == k {
			date = date.AddDate(0, 0, 7-days[idx]+days[0])
			next = 0
		} else {
			date = date.AddDate(0, 0, days[next]-days[idx])
		}
		idx = next
	}
	return date, true
}
