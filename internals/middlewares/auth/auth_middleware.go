// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"steam_backend/internals/configs"
	"steam_backend/internals/features/users/auth/repository"
	authService "steam_backend/internals/features/users/auth/service"
	helper "steam_backend/internals/helpers"
)

type Config struct {
	Secret    string
	Blacklist authService.TokenBlacklist
	Users     repository.UserStore
}

// AuthMiddleware verifies the bearer token, rejects revoked tokens and inactive
// accounts, and leaves user_id / userRole / claims in locals.
func AuthMiddleware(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}
		if cfg.Secret == "" {
			configs.Log.Error("auth: JWT secret is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "internal server error")
		}

		claims, err := authService.ParseToken(cfg.Secret, raw)
		if err != nil {
			if errors.Is(err, authService.ErrTokenExpired) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "token expired")
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid token")
		}

		revoked, err := cfg.Blacklist.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			configs.Log.Error("auth: blacklist lookup failed", zap.Error(err))
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "cannot verify token right now")
		}
		if revoked {
			return helper.JsonError(c, fiber.StatusUnauthorized, "token has been revoked")
		}

		userID, err := claims.UserID()
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "invalid token subject")
		}
		if cfg.Users != nil {
			user, err := cfg.Users.FindUserByID(c.UserContext(), userID)
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return helper.JsonError(c, fiber.StatusUnauthorized, "user not found")
			case err != nil:
				return helper.FromFiberError(c, err)
			case !user.WebUserIsActive:
				return helper.JsonError(c, fiber.StatusForbidden, "account is disabled")
			}
			// role changes apply without waiting for a new token
			claims.Role = user.WebUserRole
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}
