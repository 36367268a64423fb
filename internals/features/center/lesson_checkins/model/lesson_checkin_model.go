// file: internals/features/center/lesson_checkins/model/lesson_checkin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeTeacher           = "teacher"
	TypeTeachingAssistant = "teaching_assistant"
)

// LessonCheckinModel records a staff member arriving for a lesson.
type LessonCheckinModel struct {
	LessonCheckinID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lesson_checkin_id" json:"lesson_checkin_id"`
	LessonCheckinLessonID uuid.UUID `gorm:"type:uuid;not null;column:lesson_checkin_lesson_id;uniqueIndex:uq_lesson_checkins_lesson_user,where:lesson_checkin_deleted_at IS NULL" json:"lesson_checkin_lesson_id"`
	LessonCheckinUserID   uuid.UUID `gorm:"type:uuid;not null;column:lesson_checkin_user_id;uniqueIndex:uq_lesson_checkins_lesson_user,where:lesson_checkin_deleted_at IS NULL;index:idx_lesson_checkins_user" json:"lesson_checkin_user_id"`
	LessonCheckinType     string    `gorm:"type:varchar(20);not null;column:lesson_checkin_type;check:lesson_checkin_type IN ('teacher','teaching_assistant')" json:"lesson_checkin_type"`
	LessonCheckinAt       time.Time `gorm:"not null;column:lesson_checkin_at" json:"lesson_checkin_at"`

	LessonCheckinCreatedAt time.Time      `gorm:"column:lesson_checkin_created_at;autoCreateTime" json:"lesson_checkin_created_at"`
	LessonCheckinDeletedAt gorm.DeletedAt `gorm:"column:lesson_checkin_deleted_at;index" json:"lesson_checkin_deleted_at,omitempty"`
}

func (LessonCheckinModel) TableName() string { return "lesson_checkins" }

func (m LessonCheckinModel) IsDeleted() bool { return m.LessonCheckinDeletedAt.Valid }
