// file: internals/features/center/course_modules/model/course_module_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModuleModel struct {
	CourseModuleID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_module_id" json:"course_module_id"`
	CourseModuleClassRoomID uuid.UUID `gorm:"type:uuid;not null;column:course_module_class_room_id;uniqueIndex:uq_course_modules_class_seq,where:course_module_deleted_at IS NULL" json:"course_module_class_room_id"`
	CourseModuleName        string    `gorm:"type:varchar(150);not null;column:course_module_name" json:"course_module_name"`
	CourseModuleDescription *string   `gorm:"type:text;column:course_module_description" json:"course_module_description"`
	// 1-based, unique within the class among alive modules
	CourseModuleSequenceNumber int `gorm:"not null;column:course_module_sequence_number;uniqueIndex:uq_course_modules_class_seq,where:course_module_deleted_at IS NULL;check:course_module_sequence_number >= 1" json:"course_module_sequence_number"`
	// always equals the number of alive lessons of the module
	CourseModuleTotalLessons int `gorm:"not null;default:1;column:course_module_total_lessons;check:course_module_total_lessons >= 0" json:"course_module_total_lessons"`

	CourseModuleCreatedAt time.Time      `gorm:"column:course_module_created_at;autoCreateTime" json:"course_module_created_at"`
	CourseModuleUpdatedAt time.Time      `gorm:"column:course_module_updated_at;autoUpdateTime" json:"course_module_updated_at"`
	CourseModuleDeletedAt gorm.DeletedAt `gorm:"column:course_module_deleted_at;index" json:"course_module_deleted_at,omitempty"`
}

func (CourseModuleModel) TableName() string { return "course_modules" }

func (m CourseModuleModel) IsDeleted() bool { return m.CourseModuleDeletedAt.Valid }

// HasLessonNumber reports whether n names one of the module's current lessons.
func (m CourseModuleModel) HasLessonNumber(n int) bool {
	return n >= 1 && n <= m.CourseModuleTotalLessons
}
