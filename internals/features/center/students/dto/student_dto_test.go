package dto

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steam_backend/internals/features/center/students/model"
	helper "steam_backend/internals/helpers"
)

func strPtr(s string) *string { return &s }

func validStudent() CreateStudentRequest {
	return CreateStudentRequest{
		StudentIdentificationNumber: " HS-0012 ",
		StudentFirstName:            "An",
		StudentLastName:             "Nguyễn Văn",
		StudentDateOfBirth:          "2014-09-02",
		StudentGender:               model.GenderMale,
		StudentParentName:           "Nguyễn Văn Bình",
		StudentParentPhone:          "0901234567",
		StudentParentEmail:          strPtr(" Binh@Example.com "),
		StudentAddress:              strPtr("   "),
	}
}

func TestCreateStudent_Validation(t *testing.T) {
	req := validStudent()
	require.NoError(t, helper.Validate.Struct(req))

	bad := validStudent()
	bad.StudentGender = "unknown"
	bad.StudentParentPhone = ""
	m, ok := helper.ValidationErrorsToMap(helper.Validate.Struct(bad))
	require.True(t, ok)
	assert.Contains(t, m, "student_gender")
	assert.Contains(t, m, "student_parent_phone")
}

func TestCreateStudent_ToModel(t *testing.T) {
	req := validStudent()
	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "HS-0012", m.StudentIdentificationNumber)
	assert.Equal(t, "binh@example.com", *m.StudentParentEmail)
	assert.Nil(t, m.StudentAddress)
	assert.True(t, m.StudentIsActive)
	assert.Equal(t, "Nguyễn Văn An", m.FullName())
}

func TestCreateStudent_RejectsFutureBirthDate(t *testing.T) {
	req := validStudent()
	req.StudentDateOfBirth = time.Now().AddDate(1, 0, 0).Format(dateLayout)
	_, err := req.ToModel()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestUpdateStudent_Apply(t *testing.T) {
	m := &model.StudentModel{StudentFirstName: "An", StudentParentPhone: "0901", StudentIsActive: true}
	inactive := false
	req := UpdateStudentRequest{
		StudentFirstName:   strPtr("  Bảo "),
		StudentDateOfBirth: strPtr("2013-01-15"),
		StudentIsActive:    &inactive,
	}
	require.NoError(t, req.Apply(m))
	assert.Equal(t, "Bảo", m.StudentFirstName)
	assert.Equal(t, "0901", m.StudentParentPhone)
	assert.Equal(t, "2013-01-15", m.StudentDateOfBirth.Format(dateLayout))
	assert.False(t, m.StudentIsActive)
}
