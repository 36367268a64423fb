package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"steam_backend/internals/configs"
)

// FromFiberError answers with the code of a *fiber.Error. Anything else is logged with the
// request identifiers and answered as a bare 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	reqID, _ := c.Locals("reqid").(string)
	userID, _ := c.Locals("user_id").(string)
	configs.Log.Error("request failed",
		zap.String("reqid", reqID),
		zap.String("user_id", userID),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return JsonError(c, fiber.StatusInternalServerError, "internal server error")
}

// ErrorHandler is the app-level fallback for errors returned by handlers and middleware.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromFiberError(c, err)
}
