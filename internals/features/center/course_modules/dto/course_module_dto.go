// file: internals/features/center/course_modules/dto/course_module_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"steam_backend/internals/features/center/course_modules/model"
	"steam_backend/internals/features/center/course_modules/service"
)

type CreateCourseModuleRequest struct {
	CourseModuleClassRoomID    uuid.UUID `json:"course_module_class_room_id" validate:"required"`
	CourseModuleName           string    `json:"course_module_name" validate:"required,max=150"`
	CourseModuleDescription    *string   `json:"course_module_description"`
	CourseModuleSequenceNumber int       `json:"course_module_sequence_number" validate:"gte=1"`
	CourseModuleTotalLessons   int       `json:"course_module_total_lessons" validate:"gte=1,lte=200"`
}

func (r *CreateCourseModuleRequest) ToModel() *model.CourseModuleModel {
	return &model.CourseModuleModel{
		CourseModuleClassRoomID:    r.CourseModuleClassRoomID,
		CourseModuleName:           strings.TrimSpace(r.CourseModuleName),
		CourseModuleDescription:    r.CourseModuleDescription,
		CourseModuleSequenceNumber: r.CourseModuleSequenceNumber,
		CourseModuleTotalLessons:   r.CourseModuleTotalLessons,
	}
}

type UpdateCourseModuleRequest struct {
	CourseModuleName           *string `json:"course_module_name" validate:"omitempty,min=1,max=150"`
	CourseModuleDescription    *string `json:"course_module_description"`
	CourseModuleSequenceNumber *int    `json:"course_module_sequence_number" validate:"omitempty,gte=1"`
	CourseModuleTotalLessons   *int    `json:"course_module_total_lessons" validate:"omitempty,gte=1,lte=200"`
}

func (r *UpdateCourseModuleRequest) ToPatch() service.ModulePatch {
	return service.ModulePatch{
		Name:           r.CourseModuleName,
		Description:    r.CourseModuleDescription,
		SequenceNumber: r.CourseModuleSequenceNumber,
		TotalLessons:   r.CourseModuleTotalLessons,
	}
}

type CourseModuleResponse struct {
	CourseModuleID             uuid.UUID `json:"course_module_id"`
	CourseModuleClassRoomID    uuid.UUID `json:"course_module_class_room_id"`
	CourseModuleName           string    `json:"course_module_name"`
	CourseModuleDescription    *string   `json:"course_module_description,omitempty"`
	CourseModuleSequenceNumber int       `json:"course_module_sequence_number"`
	CourseModuleTotalLessons   int       `json:"course_module_total_lessons"`
	CourseModuleCreatedAt      time.Time `json:"course_module_created_at"`
	CourseModuleUpdatedAt      time.Time `json:"course_module_updated_at"`
}

func FromModel(m model.CourseModuleModel) CourseModuleResponse {
	return CourseModuleResponse{
		CourseModuleID:             m.CourseModuleID,
		CourseModuleClassRoomID:    m.CourseModuleClassRoomID,
		CourseModuleName:           m.CourseModuleName,
		CourseModuleDescription:    m.CourseModuleDescription,
		CourseModuleSequenceNumber: m.CourseModuleSequenceNumber,
		CourseModuleTotalLessons:   m.CourseModuleTotalLessons,
		CourseModuleCreatedAt:      m.CourseModuleCreatedAt,
		CourseModuleUpdatedAt:      m.CourseModuleUpdatedAt,
	}
}

func FromModels(rows []model.CourseModuleModel) []CourseModuleResponse {
	out := make([]CourseModuleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
