package report

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ornasync/feature/match"
)

func TestHandler(t *testing.T) {
	store := newStore(t)

	rep := match.NewReporter(zap.NewNop())
	rep.Field("items", "Aquatic Blade", 42, "tier", 7, 8)
	run, err := store.SaveRun(context.Background(), rep, false, []string{"items"}, time.Now(), time.Now())
	require.NoError(t, err)

	app := fiber.New()
	feature := NewFeature(store)
	require.True(t, feature.IsEnabled())
	require.NoError(t, feature.Load(app))

	t.Run("List", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/runs/", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var runs []Run
		require.NoError(t, json.Unmarshal(body, &runs))
		require.Len(t, runs, 1)
		assert.Equal(t, run.ID, runs[0].ID)
	})

	t.Run("Get", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/runs/"+run.ID, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		var loaded Run
		require.NoError(t, json.Unmarshal(body, &loaded))
		require.Len(t, loaded.Mismatches, 1)
		assert.Equal(t, "tier", loaded.Mismatches[0].Field)
	})

	t.Run("Not found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/runs/unknown", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("Disabled without store", func(t *testing.T) {
		assert.False(t, NewFeature(nil).IsEnabled())
	})
}
