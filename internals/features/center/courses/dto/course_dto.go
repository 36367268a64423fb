// file: internals/features/center/courses/dto/course_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"steam_backend/internals/features/center/courses/model"
)

/* =========================================================
   Requests
   ========================================================= */

type CreateCourseRequest struct {
	CourseName            string  `json:"course_name" validate:"required,max=150"`
	CourseDescription     *string `json:"course_description" validate:"omitempty"`
	CourseThumbnailURL    *string `json:"course_thumbnail_url" validate:"omitempty,url"`
	CoursePrice           int64   `json:"course_price" validate:"gte=0"`
	CourseDurationMinutes *int    `json:"course_duration_minutes" validate:"omitempty,gte=1,lte=600"`
	CourseIsActive        *bool   `json:"course_is_active"`
}

func (r *CreateCourseRequest) ToModel() *model.CourseModel {
	m := &model.CourseModel{
		CourseName:            strings.TrimSpace(r.CourseName),
		CourseDescription:     trimPtr(r.CourseDescription),
		CourseThumbnailURL:    trimPtr(r.CourseThumbnailURL),
		CoursePrice:           r.CoursePrice,
		CourseDurationMinutes: 90,
		CourseIsActive:        true,
	}
	if r.CourseDurationMinutes != nil {
		m.CourseDurationMinutes = *r.CourseDurationMinutes
	}
	if r.CourseIsActive != nil {
		m.CourseIsActive = *r.CourseIsActive
	}
	return m
}

// UpdateCourseRequest is a partial update; nil fields are left alone.
type UpdateCourseRequest struct {
	CourseName            *string `json:"course_name" validate:"omitempty,min=1,max=150"`
	CourseDescription     *string `json:"course_description"`
	CourseThumbnailURL    *string `json:"course_thumbnail_url" validate:"omitempty,url"`
	CoursePrice           *int64  `json:"course_price" validate:"omitempty,gte=0"`
	CourseDurationMinutes *int    `json:"course_duration_minutes" validate:"omitempty,gte=1,lte=600"`
	CourseIsActive        *bool   `json:"course_is_active"`
}

func (r *UpdateCourseRequest) Apply(m *model.CourseModel) {
	if r.CourseName != nil {
		m.CourseName = strings.TrimSpace(*r.CourseName)
	}
	if r.CourseDescription != nil {
		m.CourseDescription = trimPtr(r.CourseDescription)
	}
	if r.CourseThumbnailURL != nil {
		m.CourseThumbnailURL = trimPtr(r.CourseThumbnailURL)
	}
	if r.CoursePrice != nil {
		m.CoursePrice = *r.CoursePrice
	}
	if r.CourseDurationMinutes != nil {
		m.CourseDurationMinutes = *r.CourseDurationMinutes
	}
	if r.CourseIsActive != nil {
		m.CourseIsActive = *r.CourseIsActive
	}
}

/* =========================================================
   Response
   ========================================================= */

type CourseResponse struct {
	CourseID              uuid.UUID `json:"course_id"`
	CourseName            string    `json:"course_name"`
	CourseDescription     *string   `json:"course_description,omitempty"`
	CourseThumbnailURL    *string   `json:"course_thumbnail_url,omitempty"`
	CoursePrice           int64     `json:"course_price"`
	CourseDurationMinutes int       `json:"course_duration_minutes"`
	CourseIsActive        bool      `json:"course_is_active"`
	CourseCreatedAt       time.Time `json:"course_created_at"`
	CourseUpdatedAt       time.Time `json:"course_updated_at"`
}

func FromModel(m model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:              m.CourseID,
		CourseName:            m.CourseName,
		CourseDescription:     m.CourseDescription,
		CourseThumbnailURL:    m.CourseThumbnailURL,
		CoursePrice:           m.CoursePrice,
		CourseDurationMinutes: m.CourseDurationMinutes,
		CourseIsActive:        m.CourseIsActive,
		CourseCreatedAt:       m.CourseCreatedAt,
		CourseUpdatedAt:       m.CourseUpdatedAt,
	}
}

func FromModels(rows []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(rows))
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
