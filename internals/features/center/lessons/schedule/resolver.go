package schedule

import (
	"time"
)

// Window is a lesson's start and end instant.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Duration() time.Duration { return w.End.Sub(w.Start) }

// NominalWindow derives a lesson's times from the weekly recurrence alone.
// It returns nil when no date can be projected; a missing or malformed range is an error.
func NominalWindow(classStart time.Time, weekly WeeklySchedule, position int) (*Window, error) {
	date, ok := LessonDate(classStart, weekly, position)
	if !ok {
		return nil, nil
	}
	rng, err := weekly.RangeFor(IsoWeekday(date))
	if err != nil {
		return nil, err
	}
	return &Window{Start: rng.Start.On(date), End: rng.End.On(date)}, nil
}

func StartDateTime(classStart time.Time, weekly WeeklySchedule, position int) (*time.Time, error) {
	w, err := NominalWindow(classStart, weekly, position)
	if err != nil || w == nil {
		return nil, err
	}
	return &w.Start, nil
}

func EndDateTime(classStart time.Time, weekly WeeklySchedule, position int) (*time.Time, error) {
	w, err := NominalWindow(classStart, weekly, position)
	if err != nil || w == nil {
		return nil, err
	}
	return &w.End, nil
}

// Effective anchors the nominal duration on the replacement start when one exists.
// Without a nominal window a replacement still fixes the start, but the end stays unknown.
func Effective(nominal *Window, replacement *time.Time) (start, end *time.Time) {
	if replacement == nil {
		if nominal == nil {
			return nil, nil
		}
		s, e := nominal.Start, nominal.End
		return &s, &e
	}
	s := *replacement
	if nominal == nil {
		return &s, nil
	}
	e := s.Add(nominal.Duration())
	return &s, &e
}
