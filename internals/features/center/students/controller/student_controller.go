// file: internals/features/center/students/controller/student_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	"steam_backend/internals/constants"
	classModel "steam_backend/internals/features/center/class_rooms/model"
	regModel "steam_backend/internals/features/center/course_registrations/model"
	"steam_backend/internals/features/center/students/dto"
	"steam_backend/internals/features/center/students/model"
	helper "steam_backend/internals/helpers"
	osshelper "steam_backend/internals/helpers/oss"
)

type StudentController struct {
	DB   *gorm.DB
	Blob osshelper.BlobService
}

func NewStudentController(db *gorm.DB, blob osshelper.BlobService) *StudentController {
	return &StudentController{DB: db, Blob: blob}
}

// taughtBy selects the students registered in a class the user teaches or assists.
func taughtBy(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	classIDs := db.Model(&classModel.ClassRoomModel{}).
		Select("class_room_id").
		Where("class_room_teacher_id = ? OR class_room_teaching_assistant_id = ?", userID, userID)
	return db.Model(&regModel.CourseRegistrationModel{}).
		Select("course_registration_student_id").
		Where("course_registration_class_room_id IN (?)", classIDs)
}

/*
	GET /students
	Query: q (id number, names, phones, parent), is_active, page, per_page
	Teachers only see students of their own classes.
*/
func (ctl *StudentController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)
	db := ctl.DB.WithContext(c.UserContext())
	tx := db.Model(&model.StudentModel{})

	if helper.CurrentRole(c) == constants.RoleTeacher {
		userID, err := helper.CurrentUserID(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		tx = tx.Where("student_id IN (?)", taughtBy(db, userID))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where(`student_identification_number ILIKE ? OR student_first_name ILIKE ? OR student_last_name ILIKE ?
			OR student_phone_number ILIKE ? OR student_parent_name ILIKE ? OR student_parent_phone ILIKE ?`,
			like, like, like, like, like, like)
	}
	switch strings.ToLower(c.Query("is_active")) {
	case "true":
		tx = tx.Where("student_is_active = ?", true)
	case "false":
		tx = tx.Where("student_is_active = ?", false)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.StudentModel
	if err := tx.Order("student_last_name ASC, student_first_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	out := dto.FromModels(rows)
	return helper.JsonList(c, "ok", out, len(out), helper.BuildPaginationFromOffset(total, pg.Offset, pg.Limit))
}

// GET /students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if helper.CurrentRole(c) == constants.RoleTeacher {
		userID, err := helper.CurrentUserID(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		db := ctl.DB.WithContext(c.UserContext())
		var n int64
		if err := db.Model(&model.StudentModel{}).
			Where("student_id = ? AND student_id IN (?)", m.StudentID, taughtBy(db, userID)).
			Count(&n).Error; err != nil {
			return helper.FromFiberError(c, err)
		}
		if n == 0 {
			return helper.JsonError(c, fiber.StatusForbidden, "student is not in one of your classes")
		}
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// POST /students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.FromFiberError(c, helper.MapPGError(err, "a student with this identification number already exists"))
	}
	return helper.JsonCreated(c, "student created", dto.FromModel(*m))
}

// PATCH /students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	var req dto.UpdateStudentRequest
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
		return helper.FromFiberError(c, helper.MapPGError(err, "student already exists"))
	}
	return helper.JsonUpdated(c, "student updated", dto.FromModel(*m))
}

// POST /students/:id/avatar (multipart: avatar) replaces the avatar image.
func (ctl *StudentController) UploadAvatar(c *fiber.Ctx) error {
	files, err := osshelper.ImageFiles(c, "avatar")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if len(files) != 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "exactly one avatar image is required")
	}
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ctx := c.UserContext()
	url, err := ctl.Blob.UploadImage(ctx, fmt.Sprintf("students/%s", m.StudentID), files[0])
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	old := m.StudentAvatarURL
	if err := ctl.DB.WithContext(ctx).Model(m).Update("student_avatar_url", url).Error; err != nil {
		_ = ctl.Blob.DeleteByPublicURL(ctx, url)
		return helper.FromFiberError(c, err)
	}
	if old != nil {
		if err := ctl.Blob.DeleteByPublicURL(ctx, *old); err != nil {
			configs.Log.Warn("student: old avatar left behind", zap.String("url", *old), zap.Error(err))
		}
	}
	m.StudentAvatarURL = &url
	return helper.JsonUpdated(c, "avatar updated", dto.FromModel(*m))
}

// DELETE /students/:id deactivates and soft-deletes the student.
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(m).Update("student_is_active", false).Error; err != nil {
			return err
		}
		return tx.Delete(m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	configs.Log.Info("student deleted", zap.String("student_id", m.StudentID.String()))
	return helper.JsonDeleted(c, "student deleted", fiber.Map{"student_id": m.StudentID})
}

func (ctl *StudentController) find(c *fiber.Ctx) (*model.StudentModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m model.StudentModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "student not found")
		}
		return nil, err
	}
	return &m, nil
}
