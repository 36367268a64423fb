// file: internals/features/center/lesson_checkins/route/lesson_checkin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/lesson_checkins/controller"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func LessonCheckinRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLessonCheckinController(db)
	manage := authMiddleware.OnlyRoles(constants.RoleErrorManager("check-in management"), constants.ManagerAndAbove...)

	g := r.Group("/lesson-checkins")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Delete("/:id", manage, ctl.Delete)
}
