package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// MapPGError turns constraint violations into client errors; other errors pass through.
func MapPGError(err error, conflictMsg string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		if conflictMsg == "" {
			conflictMsg = "duplicate value"
		}
		return fiber.NewError(fiber.StatusConflict, conflictMsg)
	case pgForeignKeyViolation:
		return fiber.NewError(fiber.StatusBadRequest, "referenced record does not exist")
	case pgCheckViolation:
		return fiber.NewError(fiber.StatusBadRequest, "value violates constraint "+pgErr.ConstraintName)
	default:
		return err
	}
}
