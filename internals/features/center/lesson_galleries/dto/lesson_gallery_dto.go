// file: internals/features/center/lesson_galleries/dto/lesson_gallery_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"steam_backend/internals/features/center/lesson_galleries/model"
)

type RemoveImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type LessonGalleryResponse struct {
	LessonGalleryID           uuid.UUID `json:"lesson_gallery_id"`
	LessonGalleryModuleID     uuid.UUID `json:"lesson_gallery_module_id"`
	LessonGalleryLessonNumber int       `json:"lesson_gallery_lesson_number"`
	LessonGalleryImageURLs    []string  `json:"lesson_gallery_image_urls"`
	LessonGalleryUpdatedAt    time.Time `json:"lesson_gallery_updated_at"`
}

func FromModel(m model.LessonGalleryModel) LessonGalleryResponse {
	urls := []string(m.LessonGalleryImageURLs)
	if urls == nil {
		urls = []string{}
	}
	return LessonGalleryResponse{
		LessonGalleryID:           m.LessonGalleryID,
		LessonGalleryModuleID:     m.LessonGalleryModuleID,
		LessonGalleryLessonNumber: m.LessonGalleryLessonNumber,
		LessonGalleryImageURLs:    urls,
		LessonGalleryUpdatedAt:    m.LessonGalleryUpdatedAt,
	}
}

func FromModels(rows []model.LessonGalleryModel) []LessonGalleryResponse {
	out := make([]LessonGalleryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
