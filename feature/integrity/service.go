package integrity

import (
	"catalog-sync/core/catalog"
	"catalog-sync/feature/catalogs/models"
	"catalog-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	db       *gorm.DB
	registry *catalog.Registry
	logger   *zap.Logger
}

// NewService creates a new integrity service.
func NewService(db *gorm.DB, registry *catalog.Registry, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		registry: registry,
		logger:   logger,
	}
}

// CheckSchema verifies every catalog table against its model and the sync contract.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.registry.All(), models.All())
}
