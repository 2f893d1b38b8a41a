package report

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	handler *Handler
}

// NewFeature creates a new run history feature. A nil store disables it,
// which is how the serve command degrades when no database is reachable.
func NewFeature(store *Store) *Feature {
	f := &Feature{store: store}
	if store != nil {
		f.handler = NewHandler(store)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "report"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.store != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
