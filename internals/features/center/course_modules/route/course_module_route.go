// file: internals/features/center/course_modules/route/course_module_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/course_modules/controller"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func CourseModuleRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseModuleController(db)
	manage := authMiddleware.OnlyRoles(constants.RoleErrorManager("module management"), constants.ManagerAndAbove...)

	g := r.Group("/course-modules")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", manage, ctl.Create)
	g.Patch("/:id", manage, ctl.Update)
	g.Delete("/:id", manage, ctl.Delete)
}
