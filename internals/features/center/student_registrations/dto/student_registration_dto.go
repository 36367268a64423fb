// file: internals/features/center/student_registrations/dto/student_registration_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"steam_backend/internals/features/center/student_registrations/model"
)

const dateLayout = "2006-01-02"

type CreateStudentRegistrationRequest struct {
	IdentificationNumber string  `json:"identification_number" validate:"required,max=20"`
	FirstName            string  `json:"first_name" validate:"required,max=100"`
	LastName             string  `json:"last_name" validate:"required,max=100"`
	DateOfBirth          string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Note                 *string `json:"note"`
}

func (r *CreateStudentRegistrationRequest) ToModel(appUserID uuid.UUID) (*model.StudentRegistrationModel, error) {
	dob, err := time.Parse(dateLayout, strings.TrimSpace(r.DateOfBirth))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
	}
	m := &model.StudentRegistrationModel{
		StudentRegistrationAppUserID:            appUserID,
		StudentRegistrationIdentificationNumber: strings.TrimSpace(r.IdentificationNumber),
		StudentRegistrationFirstName:            strings.TrimSpace(r.FirstName),
		StudentRegistrationLastName:             strings.TrimSpace(r.LastName),
		StudentRegistrationDateOfBirth:          dob,
	}
	if r.Note != nil {
		if n := strings.TrimSpace(*r.Note); n != "" {
			m.StudentRegistrationNote = &n
		}
	}
	return m, nil
}

type DecideStudentRegistrationRequest struct {
	Status string  `json:"status" validate:"required,oneof=approved rejected"`
	Note   *string `json:"note"`
}

type StudentRegistrationResponse struct {
	StudentRegistrationID                   uuid.UUID  `json:"student_registration_id"`
	StudentRegistrationAppUserID            uuid.UUID  `json:"student_registration_app_user_id"`
	StudentRegistrationIdentificationNumber string     `json:"student_registration_identification_number"`
	StudentRegistrationFirstName            string     `json:"student_registration_first_name"`
	StudentRegistrationLastName             string     `json:"student_registration_last_name"`
	StudentRegistrationDateOfBirth          string     `json:"student_registration_date_of_birth"`
	StudentRegistrationStudentID            *uuid.UUID `json:"student_registration_student_id,omitempty"`
	StudentRegistrationStatus               string     `json:"student_registration_status"`
	StudentRegistrationNote                 *string    `json:"student_registration_note,omitempty"`
	StudentRegistrationCreatedAt            time.Time  `json:"student_registration_created_at"`
	StudentRegistrationUpdatedAt            time.Time  `json:"student_registration_updated_at"`
}

func FromModel(m model.StudentRegistrationModel) StudentRegistrationResponse {
	return StudentRegistrationResponse{
		StudentRegistrationID:                   m.StudentRegistrationID,
		StudentRegistrationAppUserID:            m.StudentRegistrationAppUserID,
		StudentRegistrationIdentificationNumber: m.StudentRegistrationIdentificationNumber,
		StudentRegistrationFirstName:            m.StudentRegistrationFirstName,
		StudentRegistrationLastName:             m.StudentRegistrationLastName,
		StudentRegistrationDateOfBirth:          m.StudentRegistrationDateOfBirth.Format(dateLayout),
		StudentRegistrationStudentID:            m.StudentRegistrationStudentID,
		StudentRegistrationStatus:               m.StudentRegistrationStatus,
		StudentRegistrationNote:                 m.StudentRegistrationNote,
		StudentRegistrationCreatedAt:            m.StudentRegistrationCreatedAt,
		StudentRegistrationUpdatedAt:            m.StudentRegistrationUpdatedAt,
	}
}

func FromModels(rows []model.StudentRegistrationModel) []StudentRegistrationResponse {
	out := make([]StudentRegistrationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
