// file: internals/features/center/lesson_documentations/route/lesson_documentation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/lesson_documentations/controller"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func LessonDocumentationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLessonDocumentationController(db)
	manage := authMiddleware.OnlyRoles(constants.RoleErrorManager("lesson documentation"), constants.ManagerAndAbove...)

	g := r.Group("/lesson-documentations")
	g.Get("/", ctl.List)
	g.Post("/", manage, ctl.Create)
	g.Patch("/:id", manage, ctl.Update)
	g.Delete("/:id", manage, ctl.Delete)
}

func LessonDocumentationAppRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLessonDocumentationController(db)
	r.Get("/lesson-documentations", ctl.AppList)
}
