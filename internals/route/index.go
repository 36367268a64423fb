// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	"steam_backend/internals/constants"
	database "steam_backend/internals/databases"
	classRoomRoute "steam_backend/internals/features/center/class_rooms/route"
	moduleRoute "steam_backend/internals/features/center/course_modules/route"
	registrationRoute "steam_backend/internals/features/center/course_registrations/route"
	courseRoute "steam_backend/internals/features/center/courses/route"
	checkinRoute "steam_backend/internals/features/center/lesson_checkins/route"
	documentationRoute "steam_backend/internals/features/center/lesson_documentations/route"
	evaluationRoute "steam_backend/internals/features/center/lesson_evaluations/route"
	galleryRoute "steam_backend/internals/features/center/lesson_galleries/route"
	lessonRoute "steam_backend/internals/features/center/lessons/route"
	studentRegistrationRoute "steam_backend/internals/features/center/student_registrations/route"
	studentRoute "steam_backend/internals/features/center/students/route"
	"steam_backend/internals/features/users/auth/repository"
	authRoute "steam_backend/internals/features/users/auth/route"
	authService "steam_backend/internals/features/users/auth/service"
	webUserRoute "steam_backend/internals/features/users/web_users/route"
	authMiddleware "steam_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	users := repository.NewGormUserStore(db)
	blacklist := authService.NewBlacklist(database.Redis)
	requireAuth := authMiddleware.AuthMiddleware(authMiddleware.Config{
		Secret:    configs.JWTSecret,
		Blacklist: blacklist,
		Users:     users,
	})

	api := app.Group("/api")

	// ===================== AUTH =====================
	configs.Log.Info("setting up /api/auth")
	authRoute.AuthRoutes(api, authService.NewAuthService(users, blacklist), requireAuth)

	// ===================== WEB (back office) =====================
	// per-route role guards live in each feature's route file
	configs.Log.Info("setting up /api/web")
	web := app.Group("/api/web", requireAuth,
		authMiddleware.OnlyRoles("back-office access only", constants.AllWebRoles...))
	courseRoute.CourseRoutes(web, db)
	classRoomRoute.ClassRoomRoutes(web, db)
	moduleRoute.CourseModuleRoutes(web, db)
	lessonRoute.LessonRoutes(web, db)
	galleryRoute.LessonGalleryRoutes(web, db)
	evaluationRoute.LessonEvaluationRoutes(web, db)
	checkinRoute.LessonCheckinRoutes(web, db)
	documentationRoute.LessonDocumentationRoutes(web, db)
	studentRoute.StudentRoutes(web, db)
	studentRegistrationRoute.StudentRegistrationRoutes(web, db)
	registrationRoute.CourseRegistrationRoutes(web, db)
	webUserRoute.WebUserRoutes(web, db)

	// ===================== APP (parents) =====================
	// the app user is the token subject; students are reached through approved student registrations
	configs.Log.Info("setting up /api/app")
	appGroup := app.Group("/api/app", requireAuth)
	classRoomRoute.ClassRoomAppRoutes(appGroup, db)
	studentRegistrationRoute.StudentRegistrationAppRoutes(appGroup, db)
	registrationRoute.CourseRegistrationAppRoutes(appGroup, db)
	evaluationRoute.LessonEvaluationAppRoutes(appGroup, db)
	documentationRoute.LessonDocumentationAppRoutes(appGroup, db)
}
