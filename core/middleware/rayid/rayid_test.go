package rayid_test

import (
	"net/http/httptest"
	"testing"

	"ornasync/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	var seen string
	app.Get("/ping", func(c *fiber.Ctx) error {
		seen, _ = c.Locals(rayid.LocalsKey).(string)
		return c.SendString("pong")
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		assert.NoError(t, err)
		rid := resp.Header.Get(rayid.HeaderName)
		assert.NotEmpty(t, rid)
		assert.Equal(t, rid, seen)
	})

	t.Run("Incoming header honored", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set(rayid.HeaderName, "upstream-id")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, "upstream-id", resp.Header.Get(rayid.HeaderName))
		assert.Equal(t, "upstream-id", seen)
	})
}
