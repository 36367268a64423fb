// file: internals/features/center/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/students/controller"
	osshelper "steam_backend/internals/helpers/oss"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db, osshelper.BlobFromEnv("students"))
	manage := authMiddleware.OnlyRoles(constants.RoleErrorManager("student management"), constants.ManagerAndAbove...)

	g := r.Group("/students")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", manage, ctl.Create)
	g.Patch("/:id", manage, ctl.Update)
	g.Post("/:id/avatar", manage, ctl.UploadAvatar)
	g.Delete("/:id", manage, ctl.Delete)
}
