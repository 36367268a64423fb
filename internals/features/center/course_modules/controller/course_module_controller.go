// file: internals/features/center/course_modules/controller/course_module_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/features/center/course_modules/dto"
	"steam_backend/internals/features/center/course_modules/service"
	"steam_backend/internals/features/center/lessons/repository"
	helper "steam_backend/internals/helpers"
)

const dupSequenceMsg = "sequence_number is already used in this class"

type CourseModuleController struct {
	Store repository.Store
	Svc   *service.ModuleService
}

func NewCourseModuleController(db *gorm.DB) *CourseModuleController {
	store := repository.NewGormStore(db)
	return &CourseModuleController{Store: store, Svc: service.NewModuleService(store)}
}

// GET /course-modules?class_room_id=... (ordered by sequence)
func (ctl *CourseModuleController) List(c *fiber.Ctx) error {
	classRoomID, err := helper.ParseUUIDQuery(c, "class_room_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if classRoomID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_room_id is required")
	}
	rows, err := ctl.Store.ListModules(c.UserContext(), *classRoomID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}

// GET /course-modules/:id
func (ctl *CourseModuleController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctl.Store.GetModule(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "module not found")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// POST /course-modules generates lessons 1..total_lessons.
func (ctl *CourseModuleController) Create(c *fiber.Ctx) error {
	var req dto.CreateCourseModuleRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := ctl.Svc.Create(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.FromFiberError(c, helper.MapPGError(err, dupSequenceMsg))
	}
	return helper.JsonCreated(c, "module created", dto.FromModel(*m))
}

// PATCH /course-modules/:id
func (ctl *CourseModuleController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.UpdateCourseModuleRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := ctl.Svc.Update(c.UserContext(), id, req.ToPatch())
	if err != nil {
		return helper.FromFiberError(c, helper.MapPGError(err, dupSequenceMsg))
	}
	return helper.JsonUpdated(c, "module updated", dto.FromModel(*m))
}

// DELETE /course-modules/:id cascades to the module's lessons.
func (ctl *CourseModuleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "module deleted", fiber.Map{"course_module_id": id})
}
