// file: internals/features/center/student_registrations/controller/student_registration_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/features/center/student_registrations/dto"
	"steam_backend/internals/features/center/student_registrations/model"
	"steam_backend/internals/features/center/student_registrations/service"
	helper "steam_backend/internals/helpers"
)

type StudentRegistrationController struct {
	DB  *gorm.DB
	Svc *service.StudentRegistrationService
}

func NewStudentRegistrationController(db *gorm.DB) *StudentRegistrationController {
	return &StudentRegistrationController{DB: db, Svc: service.NewStudentRegistrationService(db)}
}

/*
	GET /student-registrations
	Query: status, q (names, identification number), page, per_page
*/
func (ctl *StudentRegistrationController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)
	tx := ctl.DB.WithContext(c.UserContext()).Model(&model.StudentRegistrationModel{})
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		tx = tx.Where("student_registration_status = ?", st)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("student_registration_first_name ILIKE ? OR student_registration_last_name ILIKE ? OR student_registration_identification_number ILIKE ?",
			like, like, like)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.StudentRegistrationModel
	if err := tx.Order("student_registration_created_at DESC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	out := dto.FromModels(rows)
	return helper.JsonList(c, "ok", out, len(out), helper.BuildPaginationFromOffset(total, pg.Offset, pg.Limit))
}

// PATCH /student-registrations/:id  {"status": "approved"|"rejected", "note": "..."}
func (ctl *StudentRegistrationController) Decide(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.DecideStudentRegistrationRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := ctl.Svc.Decide(c.UserContext(), id, req.Status, req.Note)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "registration request updated", dto.FromModel(*m))
}

// GET /api/app/student-registrations: the caller's own requests.
func (ctl *StudentRegistrationController) AppList(c *fiber.Ctx) error {
	userID, err := helper.CurrentUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []model.StudentRegistrationModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("student_registration_app_user_id = ?", userID).
		Order("student_registration_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}

// POST /api/app/student-registrations
func (ctl *StudentRegistrationController) AppCreate(c *fiber.Ctx) error {
	userID, err := helper.CurrentUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req dto.CreateStudentRegistrationRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := req.ToModel(userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.Svc.Request(c.UserContext(), m); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "request received and pending review", dto.FromModel(*m))
}
