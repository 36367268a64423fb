package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

// RequestTimeout bounds handler work; it matches the DB statement_timeout budget.
const RequestTimeout = 5 * time.Second

// RequestContext assigns X-Request-ID and a deadline-bound user context.
func RequestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.UserContext(), RequestTimeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
