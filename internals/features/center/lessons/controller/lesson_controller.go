// file: internals/features/center/lessons/controller/lesson_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/features/center/lessons/dto"
	"steam_backend/internals/features/center/lessons/model"
	"steam_backend/internals/features/center/lessons/repository"
	"steam_backend/internals/features/center/lessons/service"
	helper "steam_backend/internals/helpers"
	"steam_backend/internals/helpers/dbtime"
)

type LessonController struct {
	DB    *gorm.DB
	Store repository.Store
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db, Store: repository.NewGormStore(db)}
}

func (ctl *LessonController) timing(c *fiber.Ctx) *service.TimingService {
	return service.NewTimingService(ctl.Store, dbtime.ClockFrom(c))
}

/*
	GET /lessons
	Query: module_id | class_room_id, page, per_page
	Ordered by module sequence, then lesson sequence.
*/
func (ctl *LessonController) List(c *fiber.Ctx) error {
	moduleID, err := helper.ParseUUIDQuery(c, "module_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	classRoomID, err := helper.ParseUUIDQuery(c, "class_room_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	pg := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&model.LessonModel{}).
		Joins("JOIN course_modules cm ON cm.course_module_id = lessons.lesson_module_id AND cm.course_module_deleted_at IS NULL")
	if moduleID != nil {
		tx = tx.Where("lessons.lesson_module_id = ?", *moduleID)
	}
	if classRoomID != nil {
		tx = tx.Where("cm.course_module_class_room_id = ?", *classRoomID)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.LessonModel
	if err := tx.
		Order("cm.course_module_sequence_number ASC").
		Order("lessons.lesson_sequence_number ASC").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]dto.LessonResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromModel(r))
	}
	return helper.JsonList(c, "ok", out, len(out), helper.BuildPaginationFromOffset(total, pg.Offset, pg.Limit))
}

// GET /lessons/:id (with derived status and times)
func (ctl *LessonController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lt, err := ctl.timing(c).Resolve(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromTiming(*lt))
}

// POST /lessons
func (ctl *LessonController) Create(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	l, err := service.NewSequenceService(ctl.Store).Insert(c.UserContext(), req.ModuleID, req.Name, req.SequenceNumber)
	if err != nil {
		return helper.FromFiberError(c, helper.MapPGError(err, "sequence number is already taken, retry"))
	}
	return helper.JsonCreated(c, "lesson created", dto.FromModel(*l))
}

// PATCH /lessons/:id
func (ctl *LessonController) Rename(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.RenameLessonRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	l, err := service.NewSequenceService(ctl.Store).Rename(c.UserContext(), id, req.Name)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "lesson renamed", dto.FromModel(*l))
}

// DELETE /lessons/:id
func (ctl *LessonController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.NewSequenceService(ctl.Store).Delete(c.UserContext(), id); err != nil {
		return helper.FromFiberError(c, helper.MapPGError(err, "sequence number is already taken, retry"))
	}
	return helper.JsonDeleted(c, "lesson deleted", fiber.Map{"lesson_id": id})
}
