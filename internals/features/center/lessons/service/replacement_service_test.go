package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lessonModel "steam_backend/internals/features/center/lessons/model"
	"steam_backend/internals/features/center/lessons/schedule"
	"steam_backend/internals/helpers/dbtime"
)

func replacementAt(lessonID uuid.UUID, when time.Time) *lessonModel.LessonReplacementModel {
	return &lessonModel.LessonReplacementModel{
		LessonReplacementLessonID: lessonID,
		LessonReplacementSchedule: when,
	}
}

// spacingFixture: three lessons; the outer two are moved onto Wednesday Mar 12,
// A to 09:00-11:00 and B to a caller-chosen start.
func spacingFixture(t *testing.T, bStart time.Time) (*fixture, *ReplacementService, uuid.UUID) {
	t.Helper()
	f := newFixture(t, schedule.WeeklySchedule{"monday": "09:00-11:00", "thursday": "09:00-11:00"},
		at(2025, time.March, 3, 0, 0), at(2025, time.June, 30, 0, 0))
	_, ids := f.addModule(t, 1, 3)
	f.replace(t, ids[0], at(2025, time.March, 12, 9, 0))
	f.replace(t, ids[2], bStart)

	svc := NewReplacementService(f.store, dbtime.FixedClock{T: at(2025, time.February, 20, 10, 0)})
	return f, svc, ids[1]
}

func TestReplace_SpacingAgainstNeighbours(t *testing.T) {
	_, svc, middle := spacingFixture(t, at(2025, time.March, 12, 14, 0))

	_, err := svc.Replace(bg, middle, at(2025, time.March, 12, 11, 15))
	requireCode(t, err, fiber.StatusBadRequest)

	_, err = svc.Replace(bg, middle, at(2025, time.March, 12, 12, 30))
	requireCode(t, err, fiber.StatusBadRequest)

	assert.NoError(t, svc.Validate(bg, middle, at(2025, time.March, 12, 11, 30)))
	assert.NoError(t, svc.Validate(bg, middle, at(2025, time.March, 12, 12, 0)))

	rep, err := svc.Replace(bg, middle, at(2025, time.March, 12, 11, 45))
	require.NoError(t, err)
	assert.True(t, at(2025, time.March, 12, 11, 45).Equal(rep.LessonReplacementSchedule))
}

func TestReplace_NextLessonCloseBy(t *testing.T) {
	_, svc, middle := spacingFixture(t, at(2025, time.March, 12, 13, 0))

	_, err := svc.Replace(bg, middle, at(2025, time.March, 12, 11, 45))
	requireCode(t, err, fiber.StatusBadRequest)
}

func TestReplace_FirstAndLastHaveOneNeighbour(t *testing.T) {
	f := newFixture(t, schedule.WeeklySchedule{"monday": "09:00-11:00"},
		at(2025, time.March, 3, 0, 0), at(2025, time.June, 30, 0, 0))
	_, ids := f.addModule(t, 1, 2)
	svc := NewReplacementService(f.store, dbtime.FixedClock{T: at(2025, time.February, 20, 10, 0)})

	// lesson 2 starts Mar 10 09:00, so lesson 1 may go up to Mar 10 07:00
	_, err := svc.Replace(bg, ids[0], at(2025, time.March, 10, 7, 0))
	require.NoError(t, err)
	_, err = svc.Replace(bg, ids[0], at(2025, time.March, 10, 7, 1))
	requireCode(t, err, fiber.StatusBadRequest)

	// lesson 1 now ends Mar 10 09:00
	_, err = svc.Replace(bg, ids[1], at(2025, time.March, 10, 9, 29))
	requireCode(t, err, fiber.StatusBadRequest)
	_, err = svc.Replace(bg, ids[1], at(2025, time.April, 1, 9, 0))
	require.NoError(t, err)
}

func TestReplace_SecondReplacementRetiresFirst(t *testing.T) {
	f := newFixture(t, schedule.WeeklySchedule{"monday": "09:00-11:00"},
		at(2025, time.March, 3, 0, 0), at(2025, time.June, 30, 0, 0))
	_, ids := f.addModule(t, 1, 1)
	svc := NewReplacementService(f.store, dbtime.FixedClock{T: at(2025, time.February, 20, 10, 0)})

	first, err := svc.Replace(bg, ids[0], at(2025, time.March, 4, 9, 0))
	require.NoError(t, err)
	second, err := svc.Replace(bg, ids[0], at(2025, time.March, 5, 9, 0))
	require.NoError(t, err)

	alive, err := svc.List(bg, ids[0])
	require.NoError(t, err)
	require.Len(t, alive, 1)
	assert.Equal(t, second.LessonReplacementID, alive[0].LessonReplacementID)

	all := f.store.AllReplacements(ids[0])
	require.Len(t, all, 2)
	assert.Equal(t, first.LessonReplacementID, all[0].LessonReplacementID)
	assert.True(t, all[0].IsDeleted())
	assert.False(t, all[1].IsDeleted())
}

func TestReplace_RejectsPast(t *testing.T) {
	_, svc, middle := spacingFixture(t, at(2025, time.March, 12, 14, 0))
	_, err := svc.Replace(bg, middle, at(2025, time.February, 19, 10, 0))
	requireCode(t, err, fiber.StatusBadRequest)
}

func TestReplace_StartedLessonIsForbidden(t *testing.T) {
	f := newFixture(t, schedule.WeeklySchedule{"wednesday": "09:00-11:00"},
		at(2025, time.January, 1, 0, 0), at(2025, time.March, 31, 0, 0))
	_, ids := f.addModule(t, 1, 2)

	running := NewReplacementService(f.store, dbtime.FixedClock{T: at(2025, time.January, 1, 10, 0)})
	_, err := running.Replace(bg, ids[0], at(2025, time.January, 3, 9, 0))
	requireCode(t, err, fiber.StatusForbidden)

	done := NewReplacementService(f.store, dbtime.FixedClock{T: at(2025, time.January, 1, 12, 0)})
	_, err = done.Replace(bg, ids[0], at(2025, time.January, 3, 9, 0))
	requireCode(t, err, fiber.StatusForbidden)
}

func TestReplace_UnknownLesson(t *testing.T) {
	_, svc, _ := spacingFixture(t, at(2025, time.March, 12, 14, 0))
	_, err := svc.Replace(bg, uuid.New(), at(2025, time.March, 12, 11, 45))
	requireCode(t, err, fiber.StatusNotFound)
}

func TestReplace_IsAtomic(t *testing.T) {
	f, svc, middle := spacingFixture(t, at(2025, time.March, 12, 14, 0))
	_, err := svc.Replace(bg, middle, at(2025, time.March, 12, 11, 45))
	require.NoError(t, err)

	f.store.FailOn("CreateReplacement", errors.New("disk full"))
	_, err = svc.Replace(bg, middle, at(2025, time.March, 12, 11, 50))
	require.Error(t, err)

	alive, err := svc.List(bg, middle)
	require.NoError(t, err)
	require.Len(t, alive, 1)
	assert.True(t, at(2025, time.March, 12, 11, 45).Equal(alive[0].LessonReplacementSchedule))
}
