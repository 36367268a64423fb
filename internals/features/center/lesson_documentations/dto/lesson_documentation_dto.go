// file: internals/features/center/lesson_documentations/dto/lesson_documentation_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"steam_backend/internals/features/center/lesson_documentations/model"
)

type CreateLessonDocumentationRequest struct {
	LessonID uuid.UUID `json:"lesson_id" validate:"required"`
	LinkURL  string    `json:"link_url" validate:"required,url,max=2048"`
	Title    *string   `json:"title" validate:"omitempty,max=150"`
}

func (r *CreateLessonDocumentationRequest) ToModel() *model.LessonDocumentationModel {
	return &model.LessonDocumentationModel{
		LessonDocumentationLessonID: r.LessonID,
		LessonDocumentationLinkURL:  strings.TrimSpace(r.LinkURL),
		LessonDocumentationTitle:    trimPtr(r.Title),
	}
}

type UpdateLessonDocumentationRequest struct {
	LinkURL *string `json:"link_url" validate:"omitempty,url,max=2048"`
	Title   *string `json:"title" validate:"omitempty,max=150"`
}

func (r *UpdateLessonDocumentationRequest) Apply(m *model.LessonDocumentationModel) {
	if r.LinkURL != nil {
		m.LessonDocumentationLinkURL = strings.TrimSpace(*r.LinkURL)
	}
	if r.Title != nil {
		m.LessonDocumentationTitle = trimPtr(r.Title)
	}
}

type LessonDocumentationResponse struct {
	LessonDocumentationID        uuid.UUID `json:"lesson_documentation_id"`
	LessonDocumentationLessonID  uuid.UUID `json:"lesson_documentation_lesson_id"`
	LessonDocumentationLinkURL   string    `json:"lesson_documentation_link_url"`
	LessonDocumentationTitle     *string   `json:"lesson_documentation_title,omitempty"`
	LessonDocumentationCreatedAt time.Time `json:"lesson_documentation_created_at"`
	LessonDocumentationUpdatedAt time.Time `json:"lesson_documentation_updated_at"`
}

func FromModel(m model.LessonDocumentationModel) LessonDocumentationResponse {
	return LessonDocumentationResponse{
		LessonDocumentationID:        m.LessonDocumentationID,
		LessonDocumentationLessonID:  m.LessonDocumentationLessonID,
		LessonDocumentationLinkURL:   m.LessonDocumentationLinkURL,
		LessonDocumentationTitle:     m.LessonDocumentationTitle,
		LessonDocumentationCreatedAt: m.LessonDocumentationCreatedAt,
		LessonDocumentationUpdatedAt: m.LessonDocumentationUpdatedAt,
	}
}

func FromModels(rows []model.LessonDocumentationModel) []LessonDocumentationResponse {
	out := make([]LessonDocumentationResponse, 0, len(rows))
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
