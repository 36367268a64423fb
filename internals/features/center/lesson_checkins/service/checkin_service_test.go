package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "steam_backend/internals/features/center/class_rooms/model"
	"steam_backend/internals/features/center/lesson_checkins/model"
)

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, code, fe.Code)
}

func TestCheckWindow(t *testing.T) {
	start := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)

	assert.NoError(t, CheckWindow(&start, start))
	assert.NoError(t, CheckWindow(&start, start.Add(-15*time.Minute)))
	assert.NoError(t, CheckWindow(&start, start.Add(15*time.Minute)))

	requireCode(t, CheckWindow(&start, start.Add(-16*time.Minute)), fiber.StatusBadRequest)
	requireCode(t, CheckWindow(&start, start.Add(15*time.Minute+time.Second)), fiber.StatusBadRequest)
	requireCode(t, CheckWindow(nil, start), fiber.StatusBadRequest)
}

func TestCheckinType(t *testing.T) {
	teacher, assistant := uuid.New(), uuid.New()
	class := &classModel.ClassRoomModel{ClassRoomTeacherID: &teacher, ClassRoomTeachingAssistantID: &assistant}

	typ, err := CheckinType(class, teacher)
	require.NoError(t, err)
	assert.Equal(t, model.TypeTeacher, typ)

	typ, err = CheckinType(class, assistant)
	require.NoError(t, err)
	assert.Equal(t, model.TypeTeachingAssistant, typ)

	_, err = CheckinType(class, uuid.New())
	requireCode(t, err, fiber.StatusForbidden)

	_, err = CheckinType(&classModel.ClassRoomModel{}, teacher)
	requireCode(t, err, fiber.StatusForbidden)
}
