package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steam_backend/internals/constants"
	classModel "steam_backend/internals/features/center/class_rooms/model"
	"steam_backend/internals/helpers/dbtime"
)

func endingOn(y int, m time.Month, d int) *classModel.ClassRoomModel {
	// DATE columns come back as UTC midnight
	return &classModel.ClassRoomModel{ClassRoomEndDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func localClock(y int, m time.Month, d, hour int) dbtime.Clock {
	return dbtime.FixedClock{T: time.Date(y, m, d, hour, 0, 0, 0, dbtime.Location())}
}

func TestCheckEditable_OpenThroughLastDay(t *testing.T) {
	class := endingOn(2024, 6, 30)

	assert.NoError(t, CheckEditable(class, localClock(2024, 6, 1, 9), "update"))
	assert.NoError(t, CheckEditable(class, localClock(2024, 6, 30, 23), "update"))
}

func TestCheckEditable_ForbiddenAfterClassEnded(t *testing.T) {
	class := endingOn(2024, 6, 30)

	for _, action := range []string{"update", "delete"} {
		err := CheckEditable(class, localClock(2024, 7, 1, 0), action)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusForbidden, fe.Code)
		assert.Equal(t, "cannot "+action+" evaluation after class has ended", fe.Message)
	}
}

func TestCheckEditable_UsesCenterCalendarDay(t *testing.T) {
	class := endingOn(2024, 6, 30)
	// 18:00 UTC on the 30th is already 1 July in the center zone
	clk := dbtime.FixedClock{T: time.Date(2024, 6, 30, 18, 0, 0, 0, time.UTC)}

	var fe *fiber.Error
	require.ErrorAs(t, CheckEditable(class, clk, "delete"), &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}

func TestCheckEvaluator(t *testing.T) {
	teacher, assistant, other := uuid.New(), uuid.New(), uuid.New()
	class := &classModel.ClassRoomModel{ClassRoomTeacherID: &teacher, ClassRoomTeachingAssistantID: &assistant}

	assert.NoError(t, CheckEvaluator(class, Actor{UserID: teacher, Role: constants.RoleTeacher}))
	assert.NoError(t, CheckEvaluator(class, Actor{UserID: assistant, Role: constants.RoleTeacher}))
	assert.NoError(t, CheckEvaluator(class, Actor{UserID: other, Role: constants.RoleManager}))
	assert.NoError(t, CheckEvaluator(class, Actor{UserID: other, Role: constants.RoleRoot}))

	var fe *fiber.Error
	require.ErrorAs(t, CheckEvaluator(class, Actor{UserID: other, Role: constants.RoleTeacher}), &fe)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}

func TestNewEvaluationService_DefaultsToSystemClock(t *testing.T) {
	assert.IsType(t, dbtime.SystemClock{}, NewEvaluationService(nil, nil).Clock)
}
