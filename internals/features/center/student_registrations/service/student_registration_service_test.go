package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steam_backend/internals/features/center/student_registrations/model"
	studentModel "steam_backend/internals/features/center/students/model"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestMatchStudent(t *testing.T) {
	st := &studentModel.StudentModel{
		StudentFirstName:   "An",
		StudentDateOfBirth: date("2014-09-02"),
		StudentIsActive:    true,
	}
	req := &model.StudentRegistrationModel{
		StudentRegistrationFirstName:   " an ",
		StudentRegistrationDateOfBirth: date("2014-09-02"),
	}
	assert.NoError(t, MatchStudent(req, st))

	req.StudentRegistrationDateOfBirth = date("2014-09-03")
	var fe *fiber.Error
	require.ErrorAs(t, MatchStudent(req, st), &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	req.StudentRegistrationDateOfBirth = date("2014-09-02")
	st.StudentIsActive = false
	require.ErrorAs(t, MatchStudent(req, st), &fe)
	assert.Contains(t, fe.Message, "not active")
}

func TestDecide_RejectsUnknownStatus(t *testing.T) {
	svc := NewStudentRegistrationService(nil)
	_, err := svc.Decide(context.Background(), uuid.New(), model.StatusPending, nil)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}
