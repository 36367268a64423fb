package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func isBusinessError(err error) bool {
	var fe *fiber.Error
	return errors.As(err, &fe) && fe.Code < 500
}

// notFound maps a missing row to 404 and wraps anything else.
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, what+" not found")
	}
	return fmt.Errorf("load %s: %w", what, err)
}
