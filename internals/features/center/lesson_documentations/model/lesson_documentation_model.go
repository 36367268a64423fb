// file: internals/features/center/lesson_documentations/model/lesson_documentation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonDocumentationModel links a lesson to material recorded for it (slides, video, photos).
type LessonDocumentationModel struct {
	LessonDocumentationID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lesson_documentation_id" json:"lesson_documentation_id"`
	LessonDocumentationLessonID uuid.UUID `gorm:"type:uuid;not null;column:lesson_documentation_lesson_id;index:idx_lesson_documentations_lesson" json:"lesson_documentation_lesson_id"`
	LessonDocumentationLinkURL  string    `gorm:"type:text;not null;column:lesson_documentation_link_url" json:"lesson_documentation_link_url"`
	LessonDocumentationTitle    *string   `gorm:"type:varchar(150);column:lesson_documentation_title" json:"lesson_documentation_title"`

	LessonDocumentationCreatedAt time.Time      `gorm:"column:lesson_documentation_created_at;autoCreateTime" json:"lesson_documentation_created_at"`
	LessonDocumentationUpdatedAt time.Time      `gorm:"column:lesson_documentation_updated_at;autoUpdateTime" json:"lesson_documentation_updated_at"`
	LessonDocumentationDeletedAt gorm.DeletedAt `gorm:"column:lesson_documentation_deleted_at;index" json:"lesson_documentation_deleted_at,omitempty"`
}

func (LessonDocumentationModel) TableName() string { return "lesson_documentations" }

func (m LessonDocumentationModel) IsDeleted() bool { return m.LessonDocumentationDeletedAt.Valid }
