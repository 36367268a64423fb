package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "steam_backend/internals/features/center/class_rooms/model"
	"steam_backend/internals/features/center/course_registrations/model"
)

func TestCheckTransition(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{model.StatusPending, model.StatusApproved, true},
		{model.StatusPending, model.StatusRejected, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusApproved, model.StatusCancelled, true},
		{model.StatusApproved, model.StatusApproved, true},
		{model.StatusApproved, model.StatusPending, false},
		{model.StatusApproved, model.StatusRejected, false},
		{model.StatusRejected, model.StatusApproved, false},
		{model.StatusCancelled, model.StatusPending, false},
		{model.StatusCancelled, model.StatusCancelled, true},
	}
	for _, tc := range cases {
		err := CheckTransition(tc.from, tc.to)
		if tc.ok {
			assert.NoError(t, err, "%s -> %s", tc.from, tc.to)
			continue
		}
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	}
}

func TestCheckPaid(t *testing.T) {
	assert.NoError(t, CheckPaid(1_500_000, 0))
	assert.NoError(t, CheckPaid(1_500_000, 1_500_000))
	assert.Error(t, CheckPaid(1_500_000, 1_500_001))
	assert.Error(t, CheckPaid(1_500_000, -1))
}

func TestBlocking(t *testing.T) {
	assert.False(t, Blocking(nil))
	for status, want := range map[string]bool{
		model.StatusPending:   true,
		model.StatusApproved:  true,
		model.StatusRejected:  false,
		model.StatusCancelled: false,
	} {
		r := &model.CourseRegistrationModel{CourseRegistrationStatus: status}
		assert.Equal(t, want, Blocking(r), status)
	}
}

func TestCheckCapacity(t *testing.T) {
	class := &classModel.ClassRoomModel{ClassRoomMaxStudents: 2}
	assert.NoError(t, CheckCapacity(class, 1))
	err := CheckCapacity(class, 2)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "class is full", fe.Message)
}
