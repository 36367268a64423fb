// file: internals/features/center/lessons/controller/replacement_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"steam_backend/internals/features/center/lessons/dto"
	"steam_backend/internals/features/center/lessons/service"
	helper "steam_backend/internals/helpers"
	"steam_backend/internals/helpers/dbtime"
)

// POST /lessons/:id/replace  {"schedule": "2025-03-12T14:00:00+07:00"}
func (ctl *LessonController) Replace(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.ReplaceLessonRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	proposed, err := dto.ParseSchedule(req.Schedule)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rep, err := service.NewReplacementService(ctl.Store, dbtime.ClockFrom(c)).Replace(c.UserContext(), id, proposed)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "lesson rescheduled", dto.FromReplacement(*rep))
}

// GET /lessons/:id/replacements (alive only, earliest schedule first)
func (ctl *LessonController) ListReplacements(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := service.NewReplacementService(ctl.Store, dbtime.ClockFrom(c)).List(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromReplacements(rows))
}
