// file: internals/features/center/course_registrations/controller/course_registration_app_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/features/center/course_registrations/dto"
	"steam_backend/internals/features/center/course_registrations/model"
	studentRegModel "steam_backend/internals/features/center/student_registrations/model"
	helper "steam_backend/internals/helpers"
)

// App surface: parents only see and book for students linked to them.

func (ctl *CourseRegistrationController) linked(c *fiber.Ctx) (*gorm.DB, error) {
	userID, err := helper.CurrentUserID(c)
	if err != nil {
		return nil, err
	}
	db := ctl.DB.WithContext(c.UserContext())
	return db.Model(&model.CourseRegistrationModel{}).
		Where("course_registration_student_id IN (?)", studentRegModel.LinkedStudentIDs(db, userID)), nil
}

// GET /api/app/course-registrations?student_id=&class_room_id=&status=
func (ctl *CourseRegistrationController) AppList(c *fiber.Ctx) error {
	tx, err := ctl.linked(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if tx, err = filtered(c, tx); err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.CourseRegistrationModel
	if err := tx.Order("course_registration_created_at DESC").Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}

// POST /api/app/course-registrations
func (ctl *CourseRegistrationController) AppCreate(c *fiber.Ctx) error {
	var req dto.CreateCourseRegistrationRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	userID, err := helper.CurrentUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	db := ctl.DB.WithContext(c.UserContext())
	var n int64
	if err := studentRegModel.LinkedStudentIDs(db, userID).
		Where("student_registration_student_id = ?", req.StudentID).
		Count(&n).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusForbidden, "you may not register this student")
	}
	m, err := ctl.Svc.Create(c.UserContext(), req.StudentID, req.ClassRoomID, req.Note)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "registration created", dto.FromModel(*m))
}

// DELETE /api/app/course-registrations/:id
func (ctl *CourseRegistrationController) AppDelete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	scope, err := ctl.linked(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.softDelete(c, scope, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "registration deleted", fiber.Map{"course_registration_id": id})
}
