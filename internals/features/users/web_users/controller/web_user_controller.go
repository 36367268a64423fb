// file: internals/features/users/web_users/controller/web_user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	"steam_backend/internals/constants"
	authModel "steam_backend/internals/features/users/auth/model"
	"steam_backend/internals/features/users/web_users/dto"
	helper "steam_backend/internals/helpers"
)

type WebUserController struct {
	DB *gorm.DB
}

func NewWebUserController(db *gorm.DB) *WebUserController {
	return &WebUserController{DB: db}
}

/*
	GET /web-users
	Query: q (email, name), role, is_active, page, per_page
	Root accounts are never listed.
*/
func (ctl *WebUserController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)
	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&authModel.WebUserModel{}).
		Where("web_user_role <> ?", constants.RoleRoot)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("web_user_email ILIKE ? OR web_user_full_name ILIKE ?", like, like)
	}
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		tx = tx.Where("web_user_role = ?", role)
	}
	switch strings.ToLower(c.Query("is_active")) {
	case "true":
		tx = tx.Where("web_user_is_active = ?", true)
	case "false":
		tx = tx.Where("web_user_is_active = ?", false)
	}

	var total int64
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []authModel.WebUserModel
	if err := tx.Order("web_user_full_name ASC").
		Limit(pg.Limit).Offset(pg.Offset).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	out := dto.FromModels(rows)
	return helper.JsonList(c, "ok", out, len(out), helper.BuildPaginationFromOffset(total, pg.Offset, pg.Limit))
}

// GET /web-users/:id
func (ctl *WebUserController) GetByID(c *fiber.Ctx) error {
	m, err := ctl.find(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// POST /web-users
func (ctl *WebUserController) Create(c *fiber.Ctx) error {
	var req dto.CreateWebUserRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.FromFiberError(c, helper.MapPGError(err, "email is already registered"))
	}
	configs.Log.Info("web user created",
		zap.String("web_user_id", m.WebUserID.String()), zap.String("role", m.WebUserRole))
	return helper.JsonCreated(c, "user created", dto.FromModel(*m))
}

// PATCH /web-users/:id
func (ctl *WebUserController) Update(c *fiber.Ctx) error {
	var req dto.UpdateWebUserRequest
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
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "user updated", dto.FromModel(*m))
}

func (ctl *WebUserController) find(c *fiber.Ctx) (*authModel.WebUserModel, error) {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}
	var m authModel.WebUserModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "web_user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return nil, err
	}
	return &m, nil
}
