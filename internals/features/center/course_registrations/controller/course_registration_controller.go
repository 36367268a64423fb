// file: internals/features/center/course_registrations/controller/course_registration_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	"steam_backend/internals/features/center/course_registrations/dto"
	"steam_backend/internals/features/center/course_registrations/model"
	"steam_backend/internals/features/center/course_registrations/service"
	helper "steam_backend/internals/helpers"
)

type CourseRegistrationController struct {
	DB  *gorm.DB
	Svc *service.RegistrationService
}

func NewCourseRegistrationController(db *gorm.DB) *CourseRegistrationController {
	return &CourseRegistrationController{DB: db, Svc: service.NewRegistrationService(db)}
}

// filtered applies the student_id / class_room_id / status query filters.
func filtered(c *fiber.Ctx, tx *gorm.DB) (*gorm.DB, error) {
	studentID, err := helper.ParseUUIDQuery(c, "student_id")
	if err != nil {
		return nil, err
	}
	classRoomID, err := helper.ParseUUIDQuery(c, "class_room_id")
	if err != nil {
		return nil, err
	}
	if studentID != nil {
		tx = tx.Where("course_registration_student_id = ?", *studentID)
	}
	if classRoomID != nil {
		tx = tx.Where("course_registration_class_room_id = ?", *classRoomID)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("course_registration_status = ?", st)
	}
	return tx, nil
}

/*
	GET /course-registrations
	Query: student_id, class_room_id, status, page, per_page (newest first)
*/
func (ctl *CourseRegistrationController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)
	tx, err := filtered(c, ctl.DB.WithContext(c.UserContext()).Model(&model.CourseRegistrationModel{}))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.CourseRegistrationModel
	if err := tx.Order("course_registration_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	out := dto.FromModels(rows)
	return helper.JsonList(c, "ok", out, len(out), helper.BuildPaginationFromOffset(total, pg.Offset, pg.Limit))
}

// POST /course-registrations
func (ctl *CourseRegistrationController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseRegistrationRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := ctl.Svc.Create(c.UserContext(), req.StudentID, req.ClassRoomID, req.Note)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "registration created", dto.FromModel(*m))
}

// PATCH /course-registrations/:id
func (ctl *CourseRegistrationController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateCourseRegistrationRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := ctl.Svc.Update(c.UserContext(), id, req.ToPatch())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "registration updated", dto.FromModel(*m))
}

// DELETE /course-registrations/:id
func (ctl *CourseRegistrationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.softDelete(c, ctl.DB.WithContext(c.UserContext()), id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "registration deleted", fiber.Map{"course_registration_id": id})
}

func (ctl *CourseRegistrationController) softDelete(c *fiber.Ctx, scope *gorm.DB, id uuid.UUID) error {
	var m model.CourseRegistrationModel
	if err := scope.First(&m, "course_registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "registration not found")
		}
		return err
	}
	if err := ctl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return err
	}
	configs.Log.Info("course registration deleted", zap.String("course_registration_id", id.String()))
	return nil
}
