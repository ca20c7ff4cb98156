package catalogs

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the catalogs feature.
func NewFeature(service *Service, adminEnabled bool) *Feature {
	return &Feature{service: service, handler: NewHandler(service, adminEnabled)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalogs"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
