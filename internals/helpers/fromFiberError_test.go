package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "lesson not found")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pq: connection reset")
	})

	cases := []struct {
		path    string
		status  int
		message string
		code    string
	}{
		{"/missing", fiber.StatusNotFound, "lesson not found", "NOT_FOUND"},
		{"/boom", fiber.StatusInternalServerError, "internal server error", ""},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.path)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.False(t, body.Success)
		assert.Equal(t, tc.message, body.Message)
		if tc.code != "" {
			assert.Equal(t, tc.code, body.ErrorCode)
		}
	}
}
