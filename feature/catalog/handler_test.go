package catalog

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	feature := NewFeature(testSnapshot(), nil, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app
}

func getRows(t *testing.T, app *fiber.App, path string) []Row {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var rows []Row
	require.NoError(t, json.Unmarshal(body, &rows))
	return rows
}

func TestHandler_Items(t *testing.T) {
	app := testApp(t)

	rows := getRows(t, app, "/api/items?name=blade&tier=3")
	assert.Len(t, rows, 2)

	rows = getRows(t, app, "/api/items?tier=10")
	require.Len(t, rows, 1)
	assert.Equal(t, "worldflame-sword", rows[0].Slug)
}

func TestHandler_Monsters(t *testing.T) {
	app := testApp(t)

	rows := getRows(t, app, "/api/monsters?sort=tier")
	require.Len(t, rows, 2)
	assert.Equal(t, "Sea Serpent", rows[0].Name)
	assert.Equal(t, "Fallen Judge", rows[1].Name)
}

func TestHandler_Coverage(t *testing.T) {
	app := testApp(t)

	rows := getRows(t, app, "/api/coverage/items")
	assert.Len(t, rows, 3)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/coverage/bogus", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
