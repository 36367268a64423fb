// file: internals/features/center/lesson_galleries/controller/lesson_gallery_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"steam_backend/internals/features/center/lesson_galleries/dto"
	"steam_backend/internals/features/center/lesson_galleries/model"
	"steam_backend/internals/features/center/lesson_galleries/service"
	helper "steam_backend/internals/helpers"
	osshelper "steam_backend/internals/helpers/oss"
)

type LessonGalleryController struct {
	DB  *gorm.DB
	Svc *service.GalleryService
}

func NewLessonGalleryController(db *gorm.DB, blob osshelper.BlobService) *LessonGalleryController {
	return &LessonGalleryController{DB: db, Svc: service.NewGalleryService(db, blob)}
}

// GET /lesson-galleries?module_id=...&lesson_number=...
func (ctl *LessonGalleryController) List(c *fiber.Ctx) error {
	moduleID, err := helper.ParseUUIDQuery(c, "module_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if moduleID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "module_id is required")
	}

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&model.LessonGalleryModel{}).
		Where("lesson_gallery_module_id = ?", *moduleID)
	if s := strings.TrimSpace(c.Query("lesson_number")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "lesson_number must be a number")
		}
		tx = tx.Where("lesson_gallery_lesson_number = ?", n)
	}

	var rows []model.LessonGalleryModel
	if err := tx.Order("lesson_gallery_lesson_number ASC").Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}

// POST /lesson-galleries (multipart: module_id, lesson_number, images[])
func (ctl *LessonGalleryController) Upload(c *fiber.Ctx) error {
	files, err := osshelper.ImageFiles(c, "images", "images[]", "image")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	moduleID, err := uuid.Parse(strings.TrimSpace(c.FormValue("module_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "module_id must be a valid UUID")
	}
	lessonNumber, err := strconv.Atoi(strings.TrimSpace(c.FormValue("lesson_number")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lesson_number must be a number")
	}

	g, err := ctl.Svc.Add(c.UserContext(), moduleID, lessonNumber, files)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "images uploaded", dto.FromModel(*g))
}

// DELETE /lesson-galleries/:id/images  {"url": "..."}
func (ctl *LessonGalleryController) RemoveImage(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.RemoveImageRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	g, err := ctl.Svc.RemoveImage(c.UserContext(), id, req.URL)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "image removed", dto.FromModel(*g))
}

// DELETE /lesson-galleries/:id
func (ctl *LessonGalleryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "gallery deleted", fiber.Map{"lesson_gallery_id": id})
}
