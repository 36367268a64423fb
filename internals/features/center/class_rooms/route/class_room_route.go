// file: internals/features/center/class_rooms/route/class_room_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/class_rooms/controller"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func ClassRoomRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassRoomController(db)
	manage := authMiddleware.OnlyRoles(constants.RoleErrorManager("class management"), constants.ManagerAndAbove...)

	g := r.Group("/class-rooms")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Get("/:id/lessons", ctl.Lessons)
	g.Post("/", manage, ctl.Create)
	g.Patch("/:id", manage, ctl.Update)
	g.Delete("/:id", manage, ctl.Delete)
}

func ClassRoomAppRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClassRoomController(db)
	g := r.Group("/class-rooms")
	g.Get("/", ctl.AppList)
	g.Get("/:id/timetable", ctl.AppTimetable)
}
