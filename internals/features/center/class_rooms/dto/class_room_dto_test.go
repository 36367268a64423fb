package dto

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steam_backend/internals/features/center/lessons/schedule"
	helper "steam_backend/internals/helpers"
)

func validCreate() CreateClassRoomRequest {
	return CreateClassRoomRequest{
		ClassRoomCourseID:  uuid.New(),
		ClassRoomName:      "  Robotics A ",
		ClassRoomStartDate: "2025-03-03",
		ClassRoomEndDate:   "2025-05-30",
		ClassRoomSchedule:  schedule.WeeklySchedule{"Monday": "09:00-11:00", "thursday": "14:00-16:00"},
	}
}

func TestCreateClassRoom_ValidatorAcceptsSchedule(t *testing.T) {
	req := validCreate()
	assert.NoError(t, helper.Validate.Struct(req))
}

func TestCreateClassRoom_ValidatorRejectsBadSchedule(t *testing.T) {
	for _, w := range []schedule.WeeklySchedule{
		{"funday": "09:00-11:00"},
		{"monday": "9:00-11:00"},
		{"monday": "11:00-09:00"},
		{"monday": "09:00-11:00", "MONDAY": "10:00-12:00"},
	} {
		req := validCreate()
		req.ClassRoomSchedule = w
		err := helper.Validate.Struct(req)
		require.Error(t, err, w)
		m, ok := helper.ValidationErrorsToMap(err)
		require.True(t, ok)
		assert.Contains(t, m, "class_room_schedule")
	}
}

func TestCreateClassRoom_ToModel(t *testing.T) {
	req := validCreate()
	m, err := req.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "Robotics A", m.ClassRoomName)
	assert.Equal(t, 20, m.ClassRoomMaxStudents)
	assert.True(t, m.ClassRoomIsActive)

	w, err := m.Weekly()
	require.NoError(t, err)
	assert.Equal(t, schedule.WeeklySchedule{"monday": "09:00-11:00", "thursday": "14:00-16:00"}, w)
}

func TestCreateClassRoom_EndBeforeStart(t *testing.T) {
	req := validCreate()
	req.ClassRoomEndDate = "2025-03-02"
	_, err := req.ToModel()

	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestUpdateClassRoom_ScheduleTriState(t *testing.T) {
	req := validCreate()
	m, err := req.ToModel()
	require.NoError(t, err)

	var keep UpdateClassRoomRequest
	require.NoError(t, json.Unmarshal([]byte(`{"class_room_name":"B"}`), &keep))
	require.NoError(t, keep.Apply(m))
	assert.Equal(t, "B", m.ClassRoomName)
	assert.NotEmpty(t, m.ClassRoomSchedule)

	var replace UpdateClassRoomRequest
	require.NoError(t, json.Unmarshal([]byte(`{"class_room_schedule":{"Friday":"08:00-09:30"}}`), &replace))
	require.NoError(t, replace.Apply(m))
	w, err := m.Weekly()
	require.NoError(t, err)
	assert.Equal(t, schedule.WeeklySchedule{"friday": "08:00-09:30"}, w)

	var clear UpdateClassRoomRequest
	require.NoError(t, json.Unmarshal([]byte(`{"class_room_schedule":null}`), &clear))
	require.NoError(t, clear.Apply(m))
	w, err = m.Weekly()
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestUpdateClassRoom_RejectsInvalidSchedule(t *testing.T) {
	req := validCreate()
	m, err := req.ToModel()
	require.NoError(t, err)

	var bad UpdateClassRoomRequest
	require.NoError(t, json.Unmarshal([]byte(`{"class_room_schedule":{"monday":"10:00-10:00"}}`), &bad))
	var fe *fiber.Error
	require.ErrorAs(t, bad.Apply(m), &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestUpdateClassRoom_DateRangeUsesStoredSide(t *testing.T) {
	req := validCreate()
	m, err := req.ToModel()
	require.NoError(t, err)

	end := "2025-03-01"
	bad := UpdateClassRoomRequest{ClassRoomEndDate: &end}
	assert.Error(t, bad.Apply(m))

	start := "2025-04-01"
	ok := UpdateClassRoomRequest{ClassRoomStartDate: &start}
	require.NoError(t, ok.Apply(m))
	assert.Equal(t, "2025-04-01", m.ClassRoomStartDate.Format(dateLayout))
}
