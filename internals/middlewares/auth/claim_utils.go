// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	authService "steam_backend/internals/features/users/auth/service"
)

const (
	LocUserID   = "user_id"
	LocUserRole = "userRole"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errors.New("no token provided")
	}
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	tok := strings.Trim(fields[1], "\"'")
	if tok == "" {
		return "", errors.New("empty token")
	}
	return tok, nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims *authService.Claims) {
	c.Locals(LocUserID, claims.Subject)
	c.Locals(LocUserRole, claims.Role)
	c.Locals(authService.LocClaims, claims)
}
