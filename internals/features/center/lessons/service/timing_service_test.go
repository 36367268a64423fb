package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "steam_backend/internals/features/center/class_rooms/model"
	"steam_backend/internals/features/center/lessons/schedule"
	"steam_backend/internals/helpers/dbtime"
)

var mwf = schedule.WeeklySchedule{
	"monday":    "09:00-11:00",
	"wednesday": "09:00-11:00",
	"friday":    "14:00-15:30",
}

func TestResolve_UsesAbsolutePosition(t *testing.T) {
	f := newFixture(t, mwf, at(2025, time.January, 1, 0, 0), at(2025, time.March, 31, 0, 0))
	f.addModule(t, 1, 2)
	_, second := f.addModule(t, 2, 2)

	svc := NewTimingService(f.store, dbtime.FixedClock{T: at(2024, time.December, 1, 8, 0)})
	lt, err := svc.Resolve(bg, second[0])
	require.NoError(t, err)

	assert.Equal(t, 3, lt.Position)
	assert.Equal(t, 2, lt.ModuleSeq)
	assert.True(t, at(2025, time.January, 6, 9, 0).Equal(*lt.Start))
	assert.True(t, at(2025, time.January, 6, 11, 0).Equal(*lt.End))
	assert.Equal(t, schedule.NotStarted, lt.Status)
	assert.Nil(t, lt.Replacement)
}

func TestResolve_ReplacementMovesTimeButNotStatus(t *testing.T) {
	f := newFixture(t, schedule.WeeklySchedule{"wednesday": "09:00-11:00"},
		at(2025, time.January, 1, 0, 0), at(2025, time.March, 31, 0, 0))
	_, ids := f.addModule(t, 1, 3)
	svc := NewTimingService(f.store, dbtime.FixedClock{T: at(2025, time.January, 1, 10, 0)})

	before, err := svc.Resolve(bg, ids[0])
	require.NoError(t, err)
	assert.Equal(t, schedule.InProgress, before.Status)

	f.replace(t, ids[0], at(2025, time.January, 2, 15, 0))

	after, err := svc.Resolve(bg, ids[0])
	require.NoError(t, err)
	assert.True(t, at(2025, time.January, 2, 15, 0).Equal(*after.Start))
	assert.True(t, at(2025, time.January, 2, 17, 0).Equal(*after.End))
	assert.Equal(t, before.Status, after.Status)
	require.NotNil(t, after.Replacement)
}

func TestResolve_EarliestAliveReplacementWins(t *testing.T) {
	f := newFixture(t, mwf, at(2025, time.January, 1, 0, 0), at(2025, time.March, 31, 0, 0))
	_, ids := f.addModule(t, 1, 1)
	for _, d := range []int{20, 10, 15} {
		require.NoError(t, f.store.CreateReplacement(bg, replacementAt(ids[0], at(2025, time.January, d, 8, 0))))
	}

	lt, err := NewTimingService(f.store, dbtime.FixedClock{T: at(2024, time.December, 1, 8, 0)}).Resolve(bg, ids[0])
	require.NoError(t, err)
	assert.True(t, at(2025, time.January, 10, 8, 0).Equal(*lt.Start))
}

func TestResolve_NoScheduleWithReplacement(t *testing.T) {
	f := newFixture(t, nil, at(2025, time.January, 1, 0, 0), at(2025, time.March, 31, 0, 0))
	_, ids := f.addModule(t, 1, 1)
	svc := NewTimingService(f.store, dbtime.FixedClock{T: at(2025, time.January, 5, 8, 0)})

	lt, err := svc.Resolve(bg, ids[0])
	require.NoError(t, err)
	assert.Nil(t, lt.Start)
	assert.Nil(t, lt.End)
	assert.Equal(t, schedule.NotStarted, lt.Status)

	f.replace(t, ids[0], at(2025, time.January, 9, 8, 0))
	lt, err = svc.Resolve(bg, ids[0])
	require.NoError(t, err)
	require.NotNil(t, lt.Start)
	assert.Nil(t, lt.End)
}

func TestResolve_CorruptScheduleIsFatal(t *testing.T) {
	f := newFixture(t, nil, at(2025, time.January, 1, 0, 0), at(2025, time.March, 31, 0, 0))
	class := classModel.ClassRoomModel{
		ClassRoomName:      "Broken",
		ClassRoomStartDate: at(2025, time.January, 1, 0, 0),
		ClassRoomEndDate:   at(2025, time.March, 31, 0, 0),
		ClassRoomSchedule:  []byte(`{"wednesday":"nine to eleven"}`),
	}
	f.classID = f.store.PutClassRoom(class)
	_, ids := f.addModule(t, 1, 1)

	_, err := NewTimingService(f.store, dbtime.FixedClock{T: at(2025, time.January, 1, 10, 0)}).Resolve(bg, ids[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, schedule.ErrMalformedTimeRange)
	assert.False(t, isBusinessError(err))
}

func TestResolve_UnknownLesson(t *testing.T) {
	f := newFixture(t, mwf, at(2025, time.January, 1, 0, 0), at(2025, time.March, 31, 0, 0))
	_, err := NewTimingService(f.store, nil).Resolve(bg, uuid.New())
	requireCode(t, err, fiber.StatusNotFound)
}

func TestTimetable_OrderAndStatuses(t *testing.T) {
	f := newFixture(t, mwf, at(2025, time.January, 1, 0, 0), at(2025, time.March, 31, 0, 0))
	_, first := f.addModule(t, 1, 2)
	_, second := f.addModule(t, 2, 2)

	// Monday Jan 6, 10:00: lessons 1-2 done, 3 running, 4 ahead
	svc := NewTimingService(f.store, dbtime.FixedClock{T: at(2025, time.January, 6, 10, 0)})
	rows, err := svc.Timetable(bg, f.classID)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	want := []struct {
		id     uuid.UUID
		pos    int
		status schedule.Status
	}{
		{first[0], 1, schedule.Completed},
		{first[1], 2, schedule.Completed},
		{second[0], 3, schedule.InProgress},
		{second[1], 4, schedule.NotStarted},
	}
	for i, w := range want {
		assert.Equal(t, w.id, rows[i].Lesson.LessonID)
		assert.Equal(t, w.pos, rows[i].Position)
		assert.Equal(t, w.status, rows[i].Status)
	}
}
