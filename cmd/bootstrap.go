package cmd

import (
	"context"
	"fmt"

	"catalog-sync/core/catalog"
	"catalog-sync/core/config"
	"catalog-sync/core/database"
	"catalog-sync/core/engine"
	"catalog-sync/core/logger"
	"catalog-sync/core/lookup"
	"catalog-sync/core/snapshot"
	"catalog-sync/core/store"
	"catalog-sync/feature/catalogs"
	"catalog-sync/feature/catalogs/definitions"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// app is the wired object graph shared by the server and the CLI commands.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *gorm.DB
	registry *catalog.Registry
	catalogs *catalogs.Service
}

// bootstrap loads the configuration and wires database, caches and engine.
func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database connection required: %w", err)
	}

	registry, err := definitions.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("invalid catalog definitions: %w", err)
	}

	st := store.NewGormStore(db)

	lookups, err := lookup.NewCache(st, logg, definitions.Lookups()...)
	if err != nil {
		return nil, fmt.Errorf("invalid lookup definitions: %w", err)
	}

	backend, err := snapshot.Open(ctx, cfg.Snapshot, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	snapshots := snapshot.NewCache(backend, cfg.Snapshot, cfg.Catalog.SchemaVersion, logg)

	eng := engine.New(cfg.Catalog, registry, st, lookups, snapshots, logg)

	return &app{
		cfg:      cfg,
		logger:   logg,
		db:       db,
		registry: registry,
		catalogs: catalogs.NewService(eng, snapshots, lookups, logg),
	}, nil
}
