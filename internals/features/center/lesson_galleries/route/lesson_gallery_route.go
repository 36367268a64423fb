// file: internals/features/center/lesson_galleries/route/lesson_gallery_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/lesson_galleries/controller"
	osshelper "steam_backend/internals/helpers/oss"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func LessonGalleryRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLessonGalleryController(db, osshelper.BlobFromEnv("lesson galleries"))
	staff := authMiddleware.OnlyRoles(constants.RoleErrorStaff("lesson galleries"), constants.StaffRoles...)

	g := r.Group("/lesson-galleries")
	g.Get("/", ctl.List)
	g.Post("/", staff, ctl.Upload)
	g.Delete("/:id/images", staff, ctl.RemoveImage)
	g.Delete("/:id", staff, ctl.Delete)
}
