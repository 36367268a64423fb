// file: internals/features/center/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"steam_backend/internals/features/center/students/model"
)

const dateLayout = "2006-01-02"

type CreateStudentRequest struct {
	StudentIdentificationNumber string  `json:"student_identification_number" validate:"required,max=20"`
	StudentFirstName            string  `json:"student_first_name" validate:"required,max=100"`
	StudentLastName             string  `json:"student_last_name" validate:"required,max=100"`
	StudentDateOfBirth          string  `json:"student_date_of_birth" validate:"required,datetime=2006-01-02"`
	StudentGender               string  `json:"student_gender" validate:"required,oneof=male female other"`
	StudentAddress              *string `json:"student_address"`
	StudentPhoneNumber          *string `json:"student_phone_number" validate:"omitempty,max=20"`
	StudentEmail                *string `json:"student_email" validate:"omitempty,email"`
	StudentParentName           string  `json:"student_parent_name" validate:"required,max=150"`
	StudentParentPhone          string  `json:"student_parent_phone" validate:"required,max=20"`
	StudentParentEmail          *string `json:"student_parent_email" validate:"omitempty,email"`
	StudentNote                 *string `json:"student_note"`
}

func (r *CreateStudentRequest) ToModel() (*model.StudentModel, error) {
	dob, err := parseBirthDate(r.StudentDateOfBirth)
	if err != nil {
		return nil, err
	}
	return &model.StudentModel{
		StudentIdentificationNumber: strings.TrimSpace(r.StudentIdentificationNumber),
		StudentFirstName:            strings.TrimSpace(r.StudentFirstName),
		StudentLastName:             strings.TrimSpace(r.StudentLastName),
		StudentDateOfBirth:          dob,
		StudentGender:               r.StudentGender,
		StudentAddress:              trimPtr(r.StudentAddress),
		StudentPhoneNumber:          trimPtr(r.StudentPhoneNumber),
		StudentEmail:                lowerPtr(r.StudentEmail),
		StudentParentName:           strings.TrimSpace(r.StudentParentName),
		StudentParentPhone:          strings.TrimSpace(r.StudentParentPhone),
		StudentParentEmail:          lowerPtr(r.StudentParentEmail),
		StudentNote:                 trimPtr(r.StudentNote),
		StudentIsActive:             true,
	}, nil
}

// UpdateStudentRequest cannot change the identification number.
type UpdateStudentRequest struct {
	StudentFirstName   *string `json:"student_first_name" validate:"omitempty,min=1,max=100"`
	StudentLastName    *string `json:"student_last_name" validate:"omitempty,min=1,max=100"`
	StudentDateOfBirth *string `json:"student_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	StudentGender      *string `json:"student_gender" validate:"omitempty,oneof=male female other"`
	StudentAddress     *string `json:"student_address"`
	StudentPhoneNumber *string `json:"student_phone_number" validate:"omitempty,max=20"`
	StudentEmail       *string `json:"student_email" validate:"omitempty,email"`
	StudentParentName  *string `json:"student_parent_name" validate:"omitempty,min=1,max=150"`
	StudentParentPhone *string `json:"student_parent_phone" validate:"omitempty,min=1,max=20"`
	StudentParentEmail *string `json:"student_parent_email" validate:"omitempty,email"`
	StudentNote        *string `json:"student_note"`
	StudentIsActive    *bool   `json:"student_is_active"`
}

func (r *UpdateStudentRequest) Apply(m *model.StudentModel) error {
	if r.StudentDateOfBirth != nil {
		dob, err := parseBirthDate(*r.StudentDateOfBirth)
		if err != nil {
			return err
		}
		m.StudentDateOfBirth = dob
	}
	if r.StudentFirstName != nil {
		m.StudentFirstName = strings.TrimSpace(*r.StudentFirstName)
	}
	if r.StudentLastName != nil {
		m.StudentLastName = strings.TrimSpace(*r.StudentLastName)
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.StudentAddress != nil {
		m.StudentAddress = trimPtr(r.StudentAddress)
	}
	if r.StudentPhoneNumber != nil {
		m.StudentPhoneNumber = trimPtr(r.StudentPhoneNumber)
	}
	if r.StudentEmail != nil {
		m.StudentEmail = lowerPtr(r.StudentEmail)
	}
	if r.StudentParentName != nil {
		m.StudentParentName = strings.TrimSpace(*r.StudentParentName)
	}
	if r.StudentParentPhone != nil {
		m.StudentParentPhone = strings.TrimSpace(*r.StudentParentPhone)
	}
	if r.StudentParentEmail != nil {
		m.StudentParentEmail = lowerPtr(r.StudentParentEmail)
	}
	if r.StudentNote != nil {
		m.StudentNote = trimPtr(r.StudentNote)
	}
	if r.StudentIsActive != nil {
		m.StudentIsActive = *r.StudentIsActive
	}
	return nil
}

// parseBirthDate rejects future dates as well as malformed ones.
func parseBirthDate(s string) (time.Time, error) {
	dob, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "student_date_of_birth must be YYYY-MM-DD")
	}
	if dob.After(time.Now()) {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "student_date_of_birth cannot be in the future")
	}
	return dob, nil
}

type StudentResponse struct {
	StudentID                   uuid.UUID `json:"student_id"`
	StudentIdentificationNumber string    `json:"student_identification_number"`
	StudentFirstName            string    `json:"student_first_name"`
	StudentLastName             string    `json:"student_last_name"`
	StudentFullName             string    `json:"student_full_name"`
	StudentDateOfBirth          string    `json:"student_date_of_birth"`
	StudentGender               string    `json:"student_gender"`
	StudentAddress              *string   `json:"student_address,omitempty"`
	StudentPhoneNumber          *string   `json:"student_phone_number,omitempty"`
	StudentEmail                *string   `json:"student_email,omitempty"`
	StudentParentName           string    `json:"student_parent_name"`
	StudentParentPhone          string    `json:"student_parent_phone"`
	StudentParentEmail          *string   `json:"student_parent_email,omitempty"`
	StudentNote                 *string   `json:"student_note,omitempty"`
	StudentAvatarURL            *string   `json:"student_avatar_url,omitempty"`
	StudentIsActive             bool      `json:"student_is_active"`
	StudentCreatedAt            time.Time `json:"student_created_at"`
	StudentUpdatedAt            time.Time `json:"student_updated_at"`
}

func FromModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:                   m.StudentID,
		StudentIdentificationNumber: m.StudentIdentificationNumber,
		StudentFirstName:            m.StudentFirstName,
		StudentLastName:             m.StudentLastName,
		StudentFullName:             m.FullName(),
		StudentDateOfBirth:          m.StudentDateOfBirth.Format(dateLayout),
		StudentGender:               m.StudentGender,
		StudentAddress:              m.StudentAddress,
		StudentPhoneNumber:          m.StudentPhoneNumber,
		StudentEmail:                m.StudentEmail,
		StudentParentName:           m.StudentParentName,
		StudentParentPhone:          m.StudentParentPhone,
		StudentParentEmail:          m.StudentParentEmail,
		StudentNote:                 m.StudentNote,
		StudentAvatarURL:            m.StudentAvatarURL,
		StudentIsActive:             m.StudentIsActive,
		StudentCreatedAt:            m.StudentCreatedAt,
		StudentUpdatedAt:            m.StudentUpdatedAt,
	}
}

func FromModels(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func lowerPtr(s *string) *string {
	v := trimPtr(s)
	if v == nil {
		return nil
	}
	l := strings.ToLower(*v)
	return &l
}
