package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ornasync/feature/snapshot"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new catalogue feature over the snapshot.
func NewFeature(snap *snapshot.Snapshot, locales snapshot.LocaleStrings, logger *zap.Logger) *Feature {
	svc := NewService(snap, logger)
	h := NewHandler(svc, locales)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.snap != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
