// file: internals/features/center/lessons/route/lesson_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/lessons/controller"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

// LessonRoutes mounts under the authenticated web group. Guards sit on the
// individual routes because Fiber group middleware matches by prefix.
func LessonRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLessonController(db)
	manage := authMiddleware.OnlyRoles(constants.RoleErrorManager("lesson management"), constants.ManagerAndAbove...)
	staff := authMiddleware.OnlyRoles(constants.RoleErrorStaff("lesson rescheduling"), constants.StaffRoles...)

	g := r.Group("/lessons")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/replacements", ctl.ListReplacements)

	g.Post("/", manage, ctl.Create)
	g.Patch("/:id", manage, ctl.Rename)
	g.Delete("/:id", manage, ctl.Delete)

	g.Post("/:id/replace", staff, ctl.Replace)
}
