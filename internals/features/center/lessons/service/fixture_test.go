package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "steam_backend/internals/features/center/class_rooms/model"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	lessonModel "steam_backend/internals/features/center/lessons/model"
	"steam_backend/internals/features/center/lessons/repository"
	"steam_backend/internals/features/center/lessons/schedule"
	"steam_backend/internals/helpers/dbtime"
)

var bg = context.Background()

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, dbtime.Location())
}

type fixture struct {
	store   *repository.MemoryStore
	classID uuid.UUID
}

func newFixture(t *testing.T, weekly schedule.WeeklySchedule, start, end time.Time) *fixture {
	t.Helper()
	store := repository.NewMemoryStore()
	class := classModel.ClassRoomModel{
		ClassRoomName:      "Robotics A",
		ClassRoomStartDate: start,
		ClassRoomEndDate:   end,
	}
	require.NoError(t, class.SetWeekly(weekly))
	return &fixture{store: store, classID: store.PutClassRoom(class)}
}

// addModule creates a module with lessons 1..total and returns their ids by sequence.
func (f *fixture) addModule(t *testing.T, seq, total int) (uuid.UUID, []uuid.UUID) {
	t.Helper()
	m := &moduleModel.CourseModuleModel{
		CourseModuleClassRoomID:    f.classID,
		CourseModuleName:           fmt.Sprintf("Module %d", seq),
		CourseModuleSequenceNumber: seq,
		CourseModuleTotalLessons:   total,
	}
	require.NoError(t, f.store.CreateModule(bg, m))

	lessons := make([]*lessonModel.LessonModel, total)
	for i := range lessons {
		lessons[i] = &lessonModel.LessonModel{
			LessonModuleID:       m.CourseModuleID,
			LessonName:           DefaultLessonName(i + 1),
			LessonSequenceNumber: i + 1,
		}
	}
	require.NoError(t, f.store.CreateLessons(bg, lessons))

	ids := make([]uuid.UUID, total)
	for i, l := range lessons {
		ids[i] = l.LessonID
	}
	return m.CourseModuleID, ids
}

func (f *fixture) replace(t *testing.T, lessonID uuid.UUID, when time.Time) {
	t.Helper()
	require.NoError(t, f.store.SoftDeleteReplacements(bg, lessonID))
	require.NoError(t, f.store.CreateReplacement(bg, &lessonModel.LessonReplacementModel{
		LessonReplacementLessonID: lessonID,
		LessonReplacementSchedule: when,
	}))
}

func (f *fixture) sequences(t *testing.T, moduleID uuid.UUID) map[uuid.UUID]int {
	t.Helper()
	rows, err := f.store.ListLessons(bg, moduleID)
	require.NoError(t, err)
	out := make(map[uuid.UUID]int, len(rows))
	for _, l := range rows {
		out[l.LessonID] = l.LessonSequenceNumber
	}
	return out
}

func (f *fixture) total(t *testing.T, moduleID uuid.UUID) int {
	t.Helper()
	m, err := f.store.GetModule(bg, moduleID)
	require.NoError(t, err)
	return m.CourseModuleTotalLessons
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, code, fe.Code, fe.Message)
}
