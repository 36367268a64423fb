package schedule

import (
	"time"

	"steam_backend/internals/helpers/dbtime"
)

type Status string

const (
	NotStarted Status = "not_started"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
)

// LessonStatus classifies a lesson by its nominal slot. Replacements are never consulted.
func LessonStatus(classStart, classEnd time.Time, weekly WeeklySchedule, position int, now time.Time) (Status, error) {
	if len(weekly) == 0 {
		return NotStarted, nil
	}

	now = now.In(dbtime.Location())
	today := dbtime.CivilDate(now)

	if today.Before(dbtime.CivilDate(classStart)) {
		return NotStarted, nil
	}
	if today.After(dbtime.CivilDate(classEnd)) {
		return Completed, nil
	}

	date, ok := LessonDate(classStart, weekly, position)
	if !ok || date.After(today) {
		return NotStarted, nil
	}
	if date.Before(today) {
		return Completed, nil
	}

	rng, err := weekly.RangeFor(IsoWeekday(date))
	if err != nil {
		return "", err
	}
	tod := dbtime.TimeOfDay(now)
	switch {
	case tod < rng.Start.Offset():
		return NotStarted, nil
	case tod > rng.End.Offset():
		return Completed, nil
	default:
		return InProgress, nil
	}
}
