// file: internals/features/center/class_rooms/controller/class_room_app_controller.go
package controller

import "github.com/gofiber/fiber/v2"

// App surface: active classes only, read-only.

// GET /api/app/class-rooms
func (ctl *ClassRoomController) AppList(c *fiber.Ctx) error {
	return ctl.list(c, true)
}

// GET /api/app/class-rooms/:id/timetable
func (ctl *ClassRoomController) AppTimetable(c *fiber.Ctx) error {
	return ctl.Lessons(c)
}
