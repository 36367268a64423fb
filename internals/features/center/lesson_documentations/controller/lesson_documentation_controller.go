// file: internals/features/center/lesson_documentations/controller/lesson_documentation_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	moduleModel "steam_backend/internals/features/center/course_modules/model"
	regModel "steam_backend/internals/features/center/course_registrations/model"
	"steam_backend/internals/features/center/lesson_documentations/dto"
	"steam_backend/internals/features/center/lesson_documentations/model"
	lessonModel "steam_backend/internals/features/center/lessons/model"
	studentRegModel "steam_backend/internals/features/center/student_registrations/model"
	helper "steam_backend/internals/helpers"
)

type LessonDocumentationController struct {
	DB *gorm.DB
}

func NewLessonDocumentationController(db *gorm.DB) *LessonDocumentationController {
	return &LessonDocumentationController{DB: db}
}

func (ctl *LessonDocumentationController) list(c *fiber.Ctx, tx *gorm.DB) error {
	var rows []model.LessonDocumentationModel
	if err := tx.Order("lesson_documentation_created_at ASC").Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}

// GET /lesson-documentations?lesson_id=&module_id=
func (ctl *LessonDocumentationController) List(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDQuery(c, "lesson_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	moduleID, err := helper.ParseUUIDQuery(c, "module_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	db := ctl.DB.WithContext(c.UserContext())
	tx := db.Model(&model.LessonDocumentationModel{})
	if lessonID != nil {
		tx = tx.Where("lesson_documentation_lesson_id = ?", *lessonID)
	}
	if moduleID != nil {
		lessonIDs := db.Model(&lessonModel.LessonModel{}).Select("lesson_id").Where("lesson_module_id = ?", *moduleID)
		tx = tx.Where("lesson_documentation_lesson_id IN (?)", lessonIDs)
	}
	return ctl.list(c, tx)
}

// POST /lesson-documentations
func (ctl *LessonDocumentationController) Create(c *fiber.Ctx) error {
	var req dto.CreateLessonDocumentationRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	db := ctl.DB.WithContext(c.UserContext())
	var lesson lessonModel.LessonModel
	if err := db.First(&lesson, "lesson_id = ?", req.LessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson not found")
		}
		return helper.FromFiberError(c, err)
	}
	m := req.ToModel()
	if err := db.Create(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "documentation created", dto.FromModel(*m))
}

// PATCH /lesson-documentations/:id
func (ctl *LessonDocumentationController) Update(c *fiber.Ctx) error {
	var req dto.UpdateLessonDocumentationRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req.Apply(m)
	if err := ctl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "documentation updated", dto.FromModel(*m))
}

// DELETE /lesson-documentations/:id
func (ctl *LessonDocumentationController) Delete(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "documentation deleted", fiber.Map{"lesson_documentation_id": m.LessonDocumentationID})
}

/*
	GET /api/app/lesson-documentations?lesson_id=
	Only lessons of classes a linked student is enrolled in.
*/
func (ctl *LessonDocumentationController) AppList(c *fiber.Ctx) error {
	lessonID, err := helper.ParseUUIDQuery(c, "lesson_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if lessonID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "lesson_id is required")
	}
	userID, err := helper.CurrentUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	db := ctl.DB.WithContext(c.UserContext())
	classIDs := db.Model(&regModel.CourseRegistrationModel{}).
		Scopes(regModel.EnrolledScope).
		Select("course_registration_class_room_id").
		Where("course_registration_student_id IN (?)", studentRegModel.LinkedStudentIDs(db, userID))
	moduleIDs := db.Model(&moduleModel.CourseModuleModel{}).
		Select("course_module_id").
		Where("course_module_class_room_id IN (?)", classIDs)
	lessonIDs := db.Model(&lessonModel.LessonModel{}).
		Select("lesson_id").
		Where("lesson_id = ? AND lesson_module_id IN (?)", *lessonID, moduleIDs)

	return ctl.list(c, db.Model(&model.LessonDocumentationModel{}).
		Where("lesson_documentation_lesson_id IN (?)", lessonIDs))
}

func (ctl *LessonDocumentationController) find(c *fiber.Ctx) (*model.LessonDocumentationModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.LessonDocumentationModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "lesson_documentation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "documentation not found")
		}
		return nil, err
	}
	return &m, nil
}
