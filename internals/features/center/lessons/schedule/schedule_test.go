package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steam_backend/internals/helpers/dbtime"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, dbtime.Location())
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, dbtime.Location())
}

var mwf = WeeklySchedule{
	"monday":    "09:00-11:00",
	"wednesday": "09:00-11:00",
	"friday":    "14:00-15:30",
}

func TestLessonDate_MondayWednesdayFriday(t *testing.T) {
	start := day(2025, time.January, 1) // Wednesday

	cases := []struct {
		n    int
		want time.Time
	}{
		{1, day(2025, time.January, 1)},
		{2, day(2025, time.January, 3)},
		{3, day(2025, time.January, 6)},
		{4, day(2025, time.January, 8)},
		{7, day(2025, time.January, 15)},
	}
	for _, tc := range cases {
		got, ok := LessonDate(start, mwf, tc.n)
		require.True(t, ok, "n=%d", tc.n)
		assert.True(t, tc.want.Equal(got), "n=%d: want %s got %s", tc.n, tc.want, got)
	}
}

func TestLessonDate_WrapsToNextWeek(t *testing.T) {
	start := day(2025, time.January, 4) // Saturday
	w := WeeklySchedule{"Monday": "08:00-09:00", "WEDNESDAY": "08:00-09:00"}

	got, ok := LessonDate(start, w, 1)
	require.True(t, ok)
	assert.True(t, day(2025, time.January, 6).Equal(got))

	got, ok = LessonDate(start, w, 3)
	require.True(t, ok)
	assert.True(t, day(2025, time.January, 13).Equal(got))
}

func TestLessonDate_UTCDateColumnKeepsCalendarDay(t *testing.T) {
	// DATE columns scan as UTC midnight
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	got, ok := LessonDate(start, mwf, 1)
	require.True(t, ok)
	assert.Equal(t, 1, got.Day())
}

func TestLessonDate_NoSchedule(t *testing.T) {
	start := day(2025, time.January, 1)
	for _, w := range []WeeklySchedule{nil, {}, {"funday": "09:00-10:00"}} {
		for _, n := range []int{1, 2, 50} {
			_, ok := LessonDate(start, w, n)
			assert.False(t, ok)
		}
	}
}

func TestLessonDate_NonPositivePosition(t *testing.T) {
	_, ok := LessonDate(day(2025, time.January, 1), mwf, 0)
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, mwf.Validate())
	assert.NoError(t, WeeklySchedule{"Tuesday": "07:30-08:15"}.Validate())

	bad := []WeeklySchedule{
		{"funday": "09:00-10:00"},
		{"monday": "9:00-10:00"},
		{"monday": "09:00-09:00"},
		{"monday": "11:00-10:00"},
		{"monday": "09:00 - 10:00"},
		{"monday": "24:00-25:00"},
		{"monday": "09:00-10:00", "Monday": "12:00-13:00"},
	}
	for _, w := range bad {
		assert.Error(t, w.Validate(), "%v", w)
	}
}

func TestRangeFor_Errors(t *testing.T) {
	_, err := mwf.RangeFor(1)
	assert.ErrorIs(t, err, ErrMissingTimeRange)

	_, err = WeeklySchedule{"monday": "oops"}.RangeFor(0)
	assert.ErrorIs(t, err, ErrMalformedTimeRange)
}

func TestNominalWindow(t *testing.T) {
	w, err := NominalWindow(day(2025, time.January, 1), mwf, 2)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.True(t, at(2025, time.January, 3, 14, 0).Equal(w.Start))
	assert.True(t, at(2025, time.January, 3, 15, 30).Equal(w.End))
	assert.Equal(t, 90*time.Minute, w.Duration())

	w, err = NominalWindow(day(2025, time.January, 1), nil, 2)
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestNominalWindow_MalformedStoredRangeIsFatal(t *testing.T) {
	_, err := NominalWindow(day(2025, time.January, 1), WeeklySchedule{"wednesday": "nine-eleven"}, 1)
	assert.ErrorIs(t, err, ErrMalformedTimeRange)

	_, err = StartDateTime(day(2025, time.January, 1), WeeklySchedule{"wednesday": "nine-eleven"}, 1)
	assert.ErrorIs(t, err, ErrMalformedTimeRange)
}

func TestEffective(t *testing.T) {
	nominal := &Window{Start: at(2025, time.January, 1, 9, 0), End: at(2025, time.January, 1, 11, 0)}

	s, e := Effective(nominal, nil)
	assert.True(t, nominal.Start.Equal(*s))
	assert.True(t, nominal.End.Equal(*e))

	r := at(2025, time.January, 2, 15, 0)
	s, e = Effective(nominal, &r)
	assert.True(t, r.Equal(*s))
	assert.True(t, at(2025, time.January, 2, 17, 0).Equal(*e))

	s, e = Effective(nil, &r)
	assert.True(t, r.Equal(*s))
	assert.Nil(t, e)

	s, e = Effective(nil, nil)
	assert.Nil(t, s)
	assert.Nil(t, e)
}

func TestLessonStatus_TimeOfDayBoundaries(t *testing.T) {
	start, end := day(2025, time.January, 1), day(2025, time.March, 1)
	w := WeeklySchedule{"wednesday": "09:00-11:00"}

	cases := []struct {
		now  time.Time
		want Status
	}{
		{at(2025, time.January, 1, 8, 59), NotStarted},
		{at(2025, time.January, 1, 9, 0), InProgress},
		{at(2025, time.January, 1, 10, 0), InProgress},
		{at(2025, time.January, 1, 11, 0), InProgress},
		{at(2025, time.January, 1, 11, 1), Completed},
	}
	for _, tc := range cases {
		got, err := LessonStatus(start, end, w, 1, tc.now)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "now=%s", tc.now.Format("15:04"))
	}
}

func TestLessonStatus_NowInOtherZone(t *testing.T) {
	start, end := day(2025, time.January, 1), day(2025, time.March, 1)
	w := WeeklySchedule{"wednesday": "09:00-11:00"}

	// 02:30 UTC is 09:30 in UTC+7
	got, err := LessonStatus(start, end, w, 1, time.Date(2025, time.January, 1, 2, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, InProgress, got)
}

func TestLessonStatus_ClassWindow(t *testing.T) {
	start, end := day(2025, time.January, 1), day(2025, time.January, 31)
	garbage := WeeklySchedule{"funday": "not a range"}

	for _, w := range []WeeklySchedule{mwf, garbage} {
		got, err := LessonStatus(start, end, w, 3, at(2024, time.December, 31, 12, 0))
		require.NoError(t, err)
		assert.Equal(t, NotStarted, got)

		got, err = LessonStatus(start, end, w, 3, at(2025, time.February, 1, 12, 0))
		require.NoError(t, err)
		assert.Equal(t, Completed, got)
	}
}

func TestLessonStatus_ByProjectedDate(t *testing.T) {
	start, end := day(2025, time.January, 1), day(2025, time.March, 1)
	now := at(2025, time.January, 6, 12, 0) // Monday, lesson 3

	got, err := LessonStatus(start, end, mwf, 2, now)
	require.NoError(t, err)
	assert.Equal(t, Completed, got)

	got, err = LessonStatus(start, end, mwf, 3, now)
	require.NoError(t, err)
	assert.Equal(t, Completed, got) // 09:00-11:00 already over

	got, err = LessonStatus(start, end, mwf, 4, now)
	require.NoError(t, err)
	assert.Equal(t, NotStarted, got)

	got, err = LessonStatus(start, end, nil, 1, now)
	require.NoError(t, err)
	assert.Equal(t, NotStarted, got)

	got, err = LessonStatus(start, end, WeeklySchedule{"funday": "09:00-10:00"}, 1, now)
	require.NoError(t, err)
	assert.Equal(t, NotStarted, got)
}
