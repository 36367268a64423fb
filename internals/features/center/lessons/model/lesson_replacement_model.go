// file: internals/features/center/lessons/model/lesson_replacement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonReplacementModel moves one lesson occurrence to a new start; the nominal duration is kept.
type LessonReplacementModel struct {
	LessonReplacementID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lesson_replacement_id" json:"lesson_replacement_id"`
	LessonReplacementLessonID uuid.UUID `gorm:"type:uuid;not null;column:lesson_replacement_lesson_id;index:idx_lesson_replacements_lesson_schedule,priority:1" json:"lesson_replacement_lesson_id"`
	LessonReplacementSchedule time.Time `gorm:"type:timestamptz;not null;column:lesson_replacement_schedule;index:idx_lesson_replacements_lesson_schedule,priority:2" json:"lesson_replacement_schedule"`

	LessonReplacementCreatedAt time.Time      `gorm:"column:lesson_replacement_created_at;autoCreateTime" json:"lesson_replacement_created_at"`
	LessonReplacementDeletedAt gorm.DeletedAt `gorm:"column:lesson_replacement_deleted_at;index" json:"lesson_replacement_deleted_at,omitempty"`
}

func (LessonReplacementModel) TableName() string { return "lesson_replacements" }

func (m LessonReplacementModel) IsDeleted() bool { return m.LessonReplacementDeletedAt.Valid }
