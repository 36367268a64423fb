// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"steam_backend/internals/features/users/auth/dto"
	"steam_backend/internals/features/users/auth/service"
	helper "steam_backend/internals/helpers"
)

type AuthController struct {
	Svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if handled, err := helper.BindAndValidate(c, &req); handled {
		return err
	}
	res, err := ac.Svc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "login successful", res)
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	claims, _ := c.Locals(service.LocClaims).(*service.Claims)
	if err := ac.Svc.Logout(c.UserContext(), claims); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "logout successful", nil)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	idStr, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid user id in token")
	}
	user, err := ac.Svc.Me(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", user)
}
