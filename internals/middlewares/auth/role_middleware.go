package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "steam_backend/internals/helpers"
)

// OnlyRoles lets the request through when the role in locals is one of roles.
func OnlyRoles(forbiddenMessage string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	if forbiddenMessage == "" {
		forbiddenMessage = "you are not allowed to access this resource"
	}
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocUserRole).(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "missing role information")
		}
		if _, ok := allowed[role]; !ok {
			return helper.JsonError(c, fiber.StatusForbidden, forbiddenMessage)
		}
		return c.Next()
	}
}
