// file: internals/features/center/class_rooms/controller/class_room_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	"steam_backend/internals/features/center/class_rooms/dto"
	"steam_backend/internals/features/center/class_rooms/model"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	courseModel "steam_backend/internals/features/center/courses/model"
	evaluationModel "steam_backend/internals/features/center/lesson_evaluations/model"
	galleryModel "steam_backend/internals/features/center/lesson_galleries/model"
	lessonDTO "steam_backend/internals/features/center/lessons/dto"
	lessonModel "steam_backend/internals/features/center/lessons/model"
	"steam_backend/internals/features/center/lessons/repository"
	"steam_backend/internals/features/center/lessons/service"
	helper "steam_backend/internals/helpers"
	"steam_backend/internals/helpers/dbtime"
)

type ClassRoomController struct {
	DB *gorm.DB
}

func NewClassRoomController(db *gorm.DB) *ClassRoomController {
	return &ClassRoomController{DB: db}
}

/* =========================================================
   total_sessions = sum of alive module totals
   ========================================================= */

func (ctl *ClassRoomController) totalSessions(c *fiber.Ctx, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []struct {
		ClassRoomID uuid.UUID
		Total       int
	}
	err := ctl.DB.WithContext(c.UserContext()).
		Model(&moduleModel.CourseModuleModel{}).
		Select("course_module_class_room_id AS class_room_id, COALESCE(SUM(course_module_total_lessons), 0) AS total").
		Where("course_module_class_room_id IN ?", ids).
		Group("course_module_class_room_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ClassRoomID] = r.Total
	}
	return out, nil
}

func (ctl *ClassRoomController) render(c *fiber.Ctx, rows []model.ClassRoomModel) ([]dto.ClassRoomResponse, error) {
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ClassRoomID
	}
	totals, err := ctl.totalSessions(c, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClassRoomResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromModel(r, totals[r.ClassRoomID]))
	}
	return out, nil
}

/*
	GET /class-rooms
	Query: course_id, teacher_id, is_active, q, page, per_page
*/
func (ctl *ClassRoomController) List(c *fiber.Ctx) error {
	return ctl.list(c, false)
}

func (ctl *ClassRoomController) list(c *fiber.Ctx, activeOnly bool) error {
	courseID, err := helper.ParseUUIDQuery(c, "course_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	teacherID, err := helper.ParseUUIDQuery(c, "teacher_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	pg := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.ClassRoomModel{})
	if courseID != nil {
		tx = tx.Where("class_room_course_id = ?", *courseID)
	}
	if teacherID != nil {
		tx = tx.Where("class_room_teacher_id = ? OR class_room_teaching_assistant_id = ?", *teacherID, *teacherID)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("class_room_name ILIKE ?", "%"+q+"%")
	}
	if activeOnly {
		tx = tx.Where("class_room_is_active = ?", true)
	} else {
		switch strings.ToLower(c.Query("is_active")) {
		case "true":
			tx = tx.Where("class_room_is_active = ?", true)
		case "false":
			tx = tx.Where("class_room_is_active = ?", false)
		}
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.ClassRoomModel
	if err := tx.Order("class_room_start_date DESC, class_room_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	out, err := ctl.render(c, rows)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", out, len(out), helper.BuildPaginationFromOffset(total, pg.Offset, pg.Limit))
}

// GET /class-rooms/:id
func (ctl *ClassRoomController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	out, err := ctl.render(c, []model.ClassRoomModel{*m})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", out[0])
}

// POST /class-rooms
func (ctl *ClassRoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRoomRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	db := ctl.DB.WithContext(c.UserContext())
	if err := db.First(&courseModel.CourseModel{}, "course_id = ?", m.ClassRoomCourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "course not found")
		}
		return helper.FromFiberError(c, err)
	}
	if err := db.Create(m).Error; err != nil {
		return helper.FromFiberError(c, helper.MapPGError(err, "class room already exists"))
	}
	return helper.JsonCreated(c, "class room created", dto.FromModel(*m, 0))
}

// PATCH /class-rooms/:id
func (ctl *ClassRoomController) Update(c *fiber.Ctx) error {
	var req dto.UpdateClassRoomRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := req.Apply(m); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		return helper.FromFiberError(c, helper.MapPGError(err, "class room already exists"))
	}
	out, err := ctl.render(c, []model.ClassRoomModel{*m})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "class room updated", out[0])
}

// DELETE /class-rooms/:id soft-deletes the class with its modules, lessons and lesson slots.
func (ctl *ClassRoomController) Delete(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		moduleIDs := tx.Model(&moduleModel.CourseModuleModel{}).
			Select("course_module_id").
			Where("course_module_class_room_id = ?", m.ClassRoomID)
		if err := tx.Where("lesson_module_id IN (?)", moduleIDs).Delete(&lessonModel.LessonModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_gallery_module_id IN (?)", moduleIDs).Delete(&galleryModel.LessonGalleryModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lesson_evaluation_module_id IN (?)", moduleIDs).Delete(&evaluationModel.LessonEvaluationModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_module_class_room_id = ?", m.ClassRoomID).Delete(&moduleModel.CourseModuleModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	configs.Log.Info("class room deleted", zap.String("class_room_id", m.ClassRoomID.String()))
	return helper.JsonDeleted(c, "class room deleted", fiber.Map{"class_room_id": m.ClassRoomID})
}

// GET /class-rooms/:id/lessons: the timetable with derived status and effective times.
func (ctl *ClassRoomController) Lessons(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	svc := service.NewTimingService(repository.NewGormStore(ctl.DB), dbtime.ClockFrom(c))
	rows, err := svc.Timetable(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", lessonDTO.FromTimings(rows))
}

func (ctl *ClassRoomController) find(c *fiber.Ctx) (*model.ClassRoomModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.ClassRoomModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "class_room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "class room not found")
		}
		return nil, err
	}
	return &m, nil
}
