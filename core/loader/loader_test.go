package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("Loads enabled, skips disabled", func(t *testing.T) {
		enabled := &fakeFeature{name: "catalog", enabled: true}
		disabled := &fakeFeature{name: "extra", enabled: false}

		mgr := NewManager(zap.NewNop())
		mgr.Register(enabled)
		mgr.Register(disabled)

		err := mgr.LoadAll(app)
		assert.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("Stops at first failure", func(t *testing.T) {
		failing := &fakeFeature{name: "broken", enabled: true, loadErr: errors.New("boom")}
		after := &fakeFeature{name: "after", enabled: true}

		mgr := NewManager(zap.NewNop())
		mgr.Register(failing)
		mgr.Register(after)

		err := mgr.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
		assert.False(t, after.loaded)
	})
}
