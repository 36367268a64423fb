// file: internals/features/center/lesson_evaluations/route/lesson_evaluation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/constants"
	"steam_backend/internals/features/center/lesson_evaluations/controller"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

func LessonEvaluationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLessonEvaluationController(db)
	staff := authMiddleware.OnlyRoles(constants.RoleErrorStaff("lesson evaluations"), constants.StaffRoles...)

	r.Get("/evaluation-criteria", ctl.Criteria)

	g := r.Group("/lesson-evaluations", staff)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)
}

func LessonEvaluationAppRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewLessonEvaluationController(db)
	r.Get("/evaluation-criteria", ctl.Criteria)
	r.Get("/lesson-evaluations", ctl.AppList)
}
