// file: internals/features/center/lesson_evaluations/controller/lesson_evaluation_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	classModel "steam_backend/internals/features/center/class_rooms/model"
	moduleModel "steam_backend/internals/features/center/course_modules/model"
	"steam_backend/internals/features/center/lesson_evaluations/dto"
	"steam_backend/internals/features/center/lesson_evaluations/model"
	"steam_backend/internals/features/center/lesson_evaluations/service"
	studentRegModel "steam_backend/internals/features/center/student_registrations/model"
	helper "steam_backend/internals/helpers"
	"steam_backend/internals/helpers/dbtime"
)

type LessonEvaluationController struct {
	DB *gorm.DB
}

func NewLessonEvaluationController(db *gorm.DB) *LessonEvaluationController {
	return &LessonEvaluationController{DB: db}
}

func (ctl *LessonEvaluationController) svc(c *fiber.Ctx) *service.EvaluationService {
	return service.NewEvaluationService(ctl.DB, dbtime.ClockFrom(c))
}

func actor(c *fiber.Ctx) (service.Actor, error) {
	userID, err := helper.CurrentUserID(c)
	if err != nil {
		return service.Actor{}, err
	}
	return service.Actor{UserID: userID, Role: helper.CurrentRole(c)}, nil
}

// base joins the owning module so rows can be filtered by class and ordered by module sequence.
func base(db *gorm.DB) *gorm.DB {
	return db.Model(&model.LessonEvaluationModel{}).
		Joins("JOIN course_modules cm ON cm.course_module_id = lesson_evaluations.lesson_evaluation_module_id AND cm.course_module_deleted_at IS NULL")
}

// filtered applies module_id / class_room_id / student_id / lesson_number.
func filtered(c *fiber.Ctx, tx *gorm.DB) (*gorm.DB, error) {
	for _, f := range []struct{ query, column string }{
		{"module_id", "lesson_evaluations.lesson_evaluation_module_id"},
		{"class_room_id", "cm.course_module_class_room_id"},
		{"student_id", "lesson_evaluations.lesson_evaluation_student_id"},
	} {
		id, err := helper.ParseUUIDQuery(c, f.query)
		if err != nil {
			return nil, err
		}
		if id != nil {
			tx = tx.Where(f.column+" = ?", *id)
		}
	}
	if s := c.Query("lesson_number"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "lesson_number must be a positive integer")
		}
		tx = tx.Where("lesson_evaluations.lesson_evaluation_lesson_number = ?", n)
	}
	return tx, nil
}

const listOrder = "cm.course_module_sequence_number ASC, lesson_evaluations.lesson_evaluation_lesson_number ASC, lesson_evaluations.lesson_evaluation_created_at ASC"

/*
	GET /lesson-evaluations
	Query: module_id, class_room_id, student_id, lesson_number, page, per_page
	Teachers only see evaluations from their own classes.
*/
func (ctl *LessonEvaluationController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)
	db := ctl.DB.WithContext(c.UserContext())
	tx, err := filtered(c, base(db))
	if err != nil {
		return helper.FromFiberError(c, err)
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
	var rows []model.LessonEvaluationModel
	if err := tx.Select("lesson_evaluations.*").Order(listOrder).
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	out := dto.FromModels(rows)
	return helper.JsonList(c, "ok", out, len(out), helper.BuildPaginationFromOffset(total, pg.Offset, pg.Limit))
}

// GET /lesson-evaluations/:id
func (ctl *LessonEvaluationController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	db := ctl.DB.WithContext(c.UserContext())
	var m model.LessonEvaluationModel
	if err := db.First(&m, "lesson_evaluation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "evaluation not found")
		}
		return helper.FromFiberError(c, err)
	}
	if helper.CurrentRole(c) == constants.RoleTeacher {
		a, err := actor(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		var module moduleModel.CourseModuleModel
		var class classModel.ClassRoomModel
		if err := db.First(&module, "course_module_id = ?", m.LessonEvaluationModuleID).Error; err != nil {
			return helper.FromFiberError(c, err)
		}
		if err := db.First(&class, "class_room_id = ?", module.CourseModuleClassRoomID).Error; err != nil {
			return helper.FromFiberError(c, err)
		}
		if err := service.CheckEvaluator(&class, a); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// POST /lesson-evaluations
func (ctl *LessonEvaluationController) Create(c *fiber.Ctx) error {
	var req dto.CreateLessonEvaluationRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	a, err := actor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := req.ToModel(&a.UserID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.svc(c).Create(c.UserContext(), a, m); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "evaluation created", dto.FromModel(*m))
}

// PATCH /lesson-evaluations/:id
func (ctl *LessonEvaluationController) Update(c *fiber.Ctx) error {
	var req dto.UpdateLessonEvaluationRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	a, err := actor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctl.svc(c).Update(c.UserContext(), a, id, req.Apply)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "evaluation updated", dto.FromModel(*m))
}

// DELETE /lesson-evaluations/:id
func (ctl *LessonEvaluationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	a, err := actor(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.svc(c).Delete(c.UserContext(), a, id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "evaluation deleted", fiber.Map{"lesson_evaluation_id": id})
}

// GET /evaluation-criteria
func (ctl *LessonEvaluationController) Criteria(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", model.Criteria)
}

// GET /api/app/lesson-evaluations: evaluations of the caller's linked students.
func (ctl *LessonEvaluationController) AppList(c *fiber.Ctx) error {
	userID, err := helper.CurrentUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	db := ctl.DB.WithContext(c.UserContext())
	tx, err := filtered(c, base(db))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	tx = tx.Where("lesson_evaluations.lesson_evaluation_student_id IN (?)", studentRegModel.LinkedStudentIDs(db, userID))

	var rows []model.LessonEvaluationModel
	if err := tx.Select("lesson_evaluations.*").Order(listOrder).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}
