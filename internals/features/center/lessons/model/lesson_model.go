// file: internals/features/center/lessons/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonModel struct {
	LessonID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lesson_id" json:"lesson_id"`
	LessonModuleID uuid.UUID `gorm:"type:uuid;not null;column:lesson_module_id;uniqueIndex:uq_lessons_module_seq,where:lesson_deleted_at IS NULL" json:"lesson_module_id"`
	LessonName     string    `gorm:"type:varchar(150);not null;column:lesson_name" json:"lesson_name"`
	// 1-based, unique within the module among alive lessons
	LessonSequenceNumber int `gorm:"not null;column:lesson_sequence_number;uniqueIndex:uq_lessons_module_seq,where:lesson_deleted_at IS NULL;check:lesson_sequence_number >= 1" json:"lesson_sequence_number"`

	LessonCreatedAt time.Time      `gorm:"column:lesson_created_at;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt time.Time      `gorm:"column:lesson_updated_at;autoUpdateTime" json:"lesson_updated_at"`
	LessonDeletedAt gorm.DeletedAt `gorm:"column:lesson_deleted_at;index" json:"lesson_deleted_at,omitempty"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m LessonModel) IsDeleted() bool { return m.LessonDeletedAt.Valid }
