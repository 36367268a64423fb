// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"steam_backend/internals/features/users/auth/controller"
	"steam_backend/internals/features/users/auth/service"
	"steam_backend/internals/middlewares"
)

// AuthRoutes: login is public; logout and me sit behind requireAuth.
func AuthRoutes(r fiber.Router, svc *service.AuthService, requireAuth fiber.Handler) {
	ctl := controller.NewAuthController(svc)

	g := r.Group("/auth")
	g.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	g.Post("/logout", requireAuth, ctl.Logout)
	g.Get("/me", requireAuth, ctl.Me)
}
