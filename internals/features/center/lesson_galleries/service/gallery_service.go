// file: internals/features/center/lesson_galleries/service/gallery_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"steam_backend/internals/configs"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	"steam_backend/internals/features/center/lesson_galleries/model"
	osshelper "steam_backend/internals/helpers/oss"
)

const MaxImagesPerUpload = 10

type GalleryService struct {
	DB   *gorm.DB
	Blob osshelper.BlobService
}

func NewGalleryService(db *gorm.DB, blob osshelper.BlobService) *GalleryService {
	return &GalleryService{DB: db, Blob: blob}
}

// CheckSlot rejects lesson numbers outside the module's current lessons.
func CheckSlot(m *moduleModel.CourseModuleModel, lessonNumber int) error {
	if !m.HasLessonNumber(lessonNumber) {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("lesson_number must be between 1 and %d", m.CourseModuleTotalLessons))
	}
	return nil
}

// UploadAll pushes every file; on the first failure the ones already stored are removed again.
func UploadAll(ctx context.Context, blob osshelper.BlobService, dir string, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "at least one image is required")
	}
	if len(files) > MaxImagesPerUpload {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("at most %d images per upload", MaxImagesPerUpload))
	}
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		u, err := blob.UploadImage(ctx, dir, fh)
		if err != nil {
			Discard(ctx, blob, urls)
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// Discard removes stored blobs; failures are only logged.
func Discard(ctx context.Context, blob osshelper.BlobService, urls []string) {
	for _, u := range urls {
		if err := blob.DeleteByPublicURL(ctx, u); err != nil {
			configs.Log.Warn("gallery: orphaned blob", zap.String("url", u), zap.Error(err))
		}
	}
}

// Add uploads the images and appends them to the (module, lesson_number) slot.
func (s *GalleryService) Add(ctx context.Context, moduleID uuid.UUID, lessonNumber int, files []*multipart.FileHeader) (*model.LessonGalleryModel, error) {
	var module moduleModel.CourseModuleModel
	if err := s.DB.WithContext(ctx).First(&module, "course_module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "module not found")
		}
		return nil, err
	}
	if err := CheckSlot(&module, lessonNumber); err != nil {
		return nil, err
	}

	dir := fmt.Sprintf("lesson-galleries/%s/%d", moduleID, lessonNumber)
	urls, err := UploadAll(ctx, s.Blob, dir, files)
	if err != nil {
		return nil, err
	}

	var out model.LessonGalleryModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("lesson_gallery_module_id = ? AND lesson_gallery_lesson_number = ?", moduleID, lessonNumber).
			First(&out).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			out = model.LessonGalleryModel{
				LessonGalleryModuleID:     moduleID,
				LessonGalleryLessonNumber: lessonNumber,
				LessonGalleryImageURLs:    urls,
			}
			return tx.Create(&out).Error
		case err != nil:
			return err
		}
		out.LessonGalleryImageURLs = append(out.LessonGalleryImageURLs, urls...)
		return tx.Model(&out).Update("lesson_gallery_image_urls", out.LessonGalleryImageURLs).Error
	})
	if err != nil {
		Discard(ctx, s.Blob, urls)
		return nil, err
	}
	return &out, nil
}

// RemoveImage drops one URL from a gallery and deletes the stored object.
func (s *GalleryService) RemoveImage(ctx context.Context, galleryID uuid.UUID, url string) (*model.LessonGalleryModel, error) {
	var out model.LessonGalleryModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&out, "lesson_gallery_id = ?", galleryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "gallery not found")
			}
			return err
		}
		kept, found := without(out.LessonGalleryImageURLs, url)
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "image not found in gallery")
		}
		out.LessonGalleryImageURLs = kept
		return tx.Model(&out).Update("lesson_gallery_image_urls", out.LessonGalleryImageURLs).Error
	})
	if err != nil {
		return nil, err
	}
	Discard(ctx, s.Blob, []string{url})
	return &out, nil
}

// Delete soft-deletes the gallery and removes its images.
func (s *GalleryService) Delete(ctx context.Context, galleryID uuid.UUID) error {
	var g model.LessonGalleryModel
	if err := s.DB.WithContext(ctx).First(&g, "lesson_gallery_id = ?", galleryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "gallery not found")
		}
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(&g).Error; err != nil {
		return err
	}
	Discard(ctx, s.Blob, g.LessonGalleryImageURLs)
	return nil
}

func without(urls []string, target string) ([]string, bool) {
	out := make([]string, 0, len(urls))
	found := false
	for _, u := range urls {
		if u == target {
			found = true
			continue
		}
		out = append(out, u)
	}
	return out, found
}
