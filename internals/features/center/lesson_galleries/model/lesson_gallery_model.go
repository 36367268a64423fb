// file: internals/features/center/lesson_galleries/model/lesson_gallery_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// LessonGalleryModel keys photos by lesson number; lesson inserts and deletes renumber it.
type LessonGalleryModel struct {
	LessonGalleryID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:lesson_gallery_id" json:"lesson_gallery_id"`
	LessonGalleryModuleID     uuid.UUID      `gorm:"type:uuid;not null;column:lesson_gallery_module_id;uniqueIndex:uq_lesson_galleries_slot,where:lesson_gallery_deleted_at IS NULL" json:"lesson_gallery_module_id"`
	LessonGalleryLessonNumber int            `gorm:"not null;column:lesson_gallery_lesson_number;uniqueIndex:uq_lesson_galleries_slot,where:lesson_gallery_deleted_at IS NULL" json:"lesson_gallery_lesson_number"`
	LessonGalleryImageURLs    pq.StringArray `gorm:"type:text[];not null;default:'{}';column:lesson_gallery_image_urls" json:"lesson_gallery_image_urls"`

	LessonGalleryCreatedAt time.Time      `gorm:"column:lesson_gallery_created_at;autoCreateTime" json:"lesson_gallery_created_at"`
	LessonGalleryUpdatedAt time.Time      `gorm:"column:lesson_gallery_updated_at;autoUpdateTime" json:"lesson_gallery_updated_at"`
	LessonGalleryDeletedAt gorm.DeletedAt `gorm:"column:lesson_gallery_deleted_at;index" json:"lesson_gallery_deleted_at,omitempty"`
}

func (LessonGalleryModel) TableName() string { return "lesson_galleries" }

func (m LessonGalleryModel) IsDeleted() bool { return m.LessonGalleryDeletedAt.Valid }
