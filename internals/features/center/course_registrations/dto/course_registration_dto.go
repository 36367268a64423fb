// file: internals/features/center/course_registrations/dto/course_registration_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"steam_backend/internals/features/center/course_registrations/model"
	"steam_backend/internals/features/center/course_registrations/service"
)

type CreateCourseRegistrationRequest struct {
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	ClassRoomID uuid.UUID `json:"class_room_id" validate:"required"`
	Note        *string   `json:"note"`
}

type UpdateCourseRegistrationRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending approved rejected cancelled"`
	PaidAmount    *int64  `json:"paid_amount" validate:"omitempty,gte=0"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,max=50"`
	Note          *string `json:"note"`
}

func (r *UpdateCourseRegistrationRequest) ToPatch() service.Patch {
	return service.Patch{
		Status:        r.Status,
		PaidAmount:    r.PaidAmount,
		PaymentMethod: trimPtr(r.PaymentMethod),
		Note:          trimPtr(r.Note),
	}
}

type CourseRegistrationResponse struct {
	CourseRegistrationID            uuid.UUID `json:"course_registration_id"`
	CourseRegistrationStudentID     uuid.UUID `json:"course_registration_student_id"`
	CourseRegistrationClassRoomID   uuid.UUID `json:"course_registration_class_room_id"`
	CourseRegistrationStatus        string    `json:"course_registration_status"`
	CourseRegistrationAmount        int64     `json:"course_registration_amount"`
	CourseRegistrationPaidAmount    int64     `json:"course_registration_paid_amount"`
	CourseRegistrationPaymentMethod *string   `json:"course_registration_payment_method,omitempty"`
	CourseRegistrationPaymentStatus string    `json:"course_registration_payment_status"`
	CourseRegistrationNote          *string   `json:"course_registration_note,omitempty"`
	Enrolled                        bool      `json:"enrolled"`
	CourseRegistrationCreatedAt     time.Time `json:"course_registration_created_at"`
	CourseRegistrationUpdatedAt     time.Time `json:"course_registration_updated_at"`
}

func FromModel(m model.CourseRegistrationModel) CourseRegistrationResponse {
	return CourseRegistrationResponse{
		CourseRegistrationID:            m.CourseRegistrationID,
		CourseRegistrationStudentID:     m.CourseRegistrationStudentID,
		CourseRegistrationClassRoomID:   m.CourseRegistrationClassRoomID,
		CourseRegistrationStatus:        m.CourseRegistrationStatus,
		CourseRegistrationAmount:        m.CourseRegistrationAmount,
		CourseRegistrationPaidAmount:    m.CourseRegistrationPaidAmount,
		CourseRegistrationPaymentMethod: m.CourseRegistrationPaymentMethod,
		CourseRegistrationPaymentStatus: model.PaymentStatus(m.CourseRegistrationAmount, m.CourseRegistrationPaidAmount),
		CourseRegistrationNote:          m.CourseRegistrationNote,
		Enrolled:                        m.Enrolled(),
		CourseRegistrationCreatedAt:     m.CourseRegistrationCreatedAt,
		CourseRegistrationUpdatedAt:     m.CourseRegistrationUpdatedAt,
	}
}

func FromModels(rows []model.CourseRegistrationModel) []CourseRegistrationResponse {
	out := make([]CourseRegistrationResponse, 0, len(rows))
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
	return &v
}
