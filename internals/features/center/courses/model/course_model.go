// file: internals/features/center/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`
	CourseName            string    `gorm:"type:varchar(150);not null;column:course_name;index:idx_courses_name" json:"course_name"`
	CourseDescription     *string   `gorm:"type:text;column:course_description" json:"course_description"`
	CourseThumbnailURL    *string   `gorm:"type:text;column:course_thumbnail_url" json:"course_thumbnail_url"`
	CoursePrice           int64     `gorm:"not null;default:0;column:course_price" json:"course_price"`
	CourseDurationMinutes int       `gorm:"not null;default:90;column:course_duration_minutes" json:"course_duration_minutes"`
	CourseIsActive        bool      `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

func (m CourseModel) IsDeleted() bool { return m.CourseDeletedAt.Valid }
