package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"steam_backend/internals/helpers/dbtime"
)

var scheduleLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseSchedule accepts RFC3339 or a wall-clock value in the center zone.
func ParseSchedule(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(dbtime.Location()), nil
	}
	for _, layout := range scheduleLayouts {
		if t, err := time.ParseInLocation(layout, raw, dbtime.Location()); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "schedule must be an RFC3339 date-time")
}
