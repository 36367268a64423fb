// file: internals/features/center/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/courses/controller"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func CourseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)
	manage := authMiddleware.OnlyRoles(constants.RoleErrorManager("course management"), constants.ManagerAndAbove...)

	g := r.Group("/courses")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", manage, ctl.Create)
	g.Patch("/:id", manage, ctl.Update)
	g.Delete("/:id", manage, ctl.Delete)
}
