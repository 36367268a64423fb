// file: internals/features/users/web_users/route/web_user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/users/web_users/controller"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func WebUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewWebUserController(db)
	manage := authMiddleware.OnlyRoles(constants.RoleErrorManager("user management"), constants.ManagerAndAbove...)
	rootOnly := authMiddleware.OnlyRoles("only root may create or change users", constants.RoleRoot)

	g := r.Group("/web-users", manage)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", rootOnly, ctl.Create)
	g.Patch("/:id", rootOnly, ctl.Update)
}
