// file: internals/features/center/student_registrations/route/student_registration_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/student_registrations/controller"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func StudentRegistrationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentRegistrationController(db)
	manage := authMiddleware.OnlyRoles(constants.RoleErrorManager("student registrations"), constants.ManagerAndAbove...)

	g := r.Group("/student-registrations", manage)
	g.Get("/", ctl.List)
	g.Patch("/:id", ctl.Decide)
}

func StudentRegistrationAppRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentRegistrationController(db)
	g := r.Group("/student-registrations")
	g.Get("/", ctl.AppList)
	g.Post("/", ctl.AppCreate)
}
