package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam reads a path param as UUID; failures are 400 fiber errors.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is not a valid UUID")
	}
	return id, nil
}

// ParseUUIDQuery reads an optional UUID query value; empty yields nil.
func ParseUUIDQuery(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, name+" is not a valid UUID")
	}
	return &id, nil
}

// BindAndValidate parses the JSON body into req and runs the validator on it.
// The returned error has already been written to the response when handled is true.
func BindAndValidate(c *fiber.Ctx, req any) (handled bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return true, JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := Validate.Struct(req); err != nil {
		if m, ok := ValidationErrorsToMap(err); ok {
			return true, JsonValidationError(c, m)
		}
		return true, JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return false, nil
}

// CurrentUserID reads the authenticated subject the auth middleware left in locals.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "missing user information")
	}
	return id, nil
}

func CurrentRole(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}
