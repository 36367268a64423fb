// file: internals/features/center/course_registrations/route/course_registration_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/course_registrations/controller"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func CourseRegistrationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseRegistrationController(db)
	manage := authMiddleware.OnlyRoles(constants.RoleErrorManager("registration management"), constants.ManagerAndAbove...)

	g := r.Group("/course-registrations")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id", manage, ctl.Update)
	g.Delete("/:id", manage, ctl.Delete)
}

func CourseRegistrationAppRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseRegistrationController(db)
	g := r.Group("/course-registrations")
	g.Get("/", ctl.AppList)
	g.Post("/", ctl.AppCreate)
	g.Delete("/:id", ctl.AppDelete)
}
