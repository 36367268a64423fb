// file: internals/features/center/lesson_checkins/controller/lesson_checkin_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	classModel "steam_backend/internals/features/center/class_rooms/model"
	"steam_backend/internals/features/center/lesson_checkins/dto"
	"steam_backend/internals/features/center/lesson_checkins/model"
	"steam_backend/internals/features/center/lesson_checkins/service"
	helper "steam_backend/internals/helpers"
	"steam_backend/internals/helpers/dbtime"
)

type LessonCheckinController struct {
	DB *gorm.DB
}

func NewLessonCheckinController(db *gorm.DB) *LessonCheckinController {
	return &LessonCheckinController{DB: db}
}

/*
	GET /lesson-checkins
	Query: lesson_id, module_id, class_room_id, user_id, page, per_page (newest first)
	Teachers only see check-ins from their own classes.
*/
func (ctl *LessonCheckinController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)
	db := ctl.DB.WithContext(c.UserContext())
	tx := db.Model(&model.LessonCheckinModel{}).
		Joins("JOIN lessons l ON l.lesson_id = lesson_checkins.lesson_checkin_lesson_id").
		Joins("JOIN course_modules cm ON cm.course_module_id = l.lesson_module_id")

	for _, f := range []struct{ query, column string }{
		{"lesson_id", "lesson_checkins.lesson_checkin_lesson_id"},
		{"module_id", "l.lesson_module_id"},
		{"class_room_id", "cm.course_module_class_room_id"},
		{"user_id", "lesson_checkins.lesson_checkin_user_id"},
	} {
		id, err := helper.ParseUUIDQuery(c, f.query)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		if id != nil {
			tx = tx.Where(f.column+" = ?", *id)
		}
	}
	if helper.CurrentRole(c) == constants.RoleTeacher {
		userID, err := helper.CurrentUserID(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		classIDs := db.Model(&classModel.ClassRoomModel{}).
			Select("class_room_id").
			Where("class_room_teacher_id = ? OR class_room_teaching_assistant_id = ?", userID, userID)
		tx = tx.Where("cm.course_module_class_room_id IN (?)", classIDs)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.LessonCheckinModel
	if err := tx.Select("lesson_checkins.*").Order("lesson_checkins.lesson_checkin_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	out := dto.FromModels(rows)
	return helper.JsonList(c, "ok", out, len(out), helper.BuildPaginationFromOffset(total, pg.Offset, pg.Limit))
}

// POST /lesson-checkins checks the caller in to a lesson.
func (ctl *LessonCheckinController) Create(c *fiber.Ctx) error {
	var req dto.CreateLessonCheckinRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	userID, err := helper.CurrentUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := service.NewCheckinService(ctl.DB, dbtime.ClockFrom(c)).Checkin(c.UserContext(), userID, req.LessonID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "checked in", dto.FromModel(*m))
}

// DELETE /lesson-checkins/:id
func (ctl *LessonCheckinController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	db := ctl.DB.WithContext(c.UserContext())
	var m model.LessonCheckinModel
	if err := db.First(&m, "lesson_checkin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "check-in not found")
		}
		return helper.FromFiberError(c, err)
	}
	if err := db.Delete(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "check-in deleted", fiber.Map{"lesson_checkin_id": id})
}
