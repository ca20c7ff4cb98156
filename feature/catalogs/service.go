package catalogs

import (
	"context"

	"catalog-sync/core/engine"
	"catalog-sync/core/lookup"
	"catalog-sync/core/snapshot"

	"go.uber.org/zap"
)

// Service exposes the engine and the cache administration to handlers and commands.
type Service struct {
	engine    *engine.Engine
	snapshots *snapshot.Cache
	lookups   *lookup.Cache
	logger    *zap.Logger
}

// NewService creates a new catalogs service.
func NewService(e *engine.Engine, snapshots *snapshot.Cache, lookups *lookup.Cache, logger *zap.Logger) *Service {
	return &Service{
		engine:    e,
		snapshots: snapshots,
		lookups:   lookups,
		logger:    logger,
	}
}

// Updates returns the watermark of every catalog.
func (s *Service) Updates(ctx context.Context) engine.Watermarks {
	return s.engine.Watermarks(ctx)
}

// Get serves one catalog request. A cursor routes delta-syncable catalogs to
// the delta resolver; other catalogs ignore it and serve their snapshot.
func (s *Service) Get(ctx context.Context, name string, q Query) (*engine.Page, error) {
	desc, err := s.engine.Catalog(name)
	if err != nil {
		return nil, err
	}
	if q.Cursor != nil && desc.Delta {
		return s.engine.Delta(ctx, name, *q.Cursor, q.Offset)
	}
	return s.engine.Page(ctx, name, q.Offset)
}

// Purge removes the cached pages of the named catalogs, or of every catalog
// when none are given.
func (s *Service) Purge(ctx context.Context, names ...string) (int, error) {
	if len(names) == 0 {
		return s.snapshots.Purge(ctx, "")
	}
	total := 0
	for _, name := range names {
		if _, err := s.engine.Catalog(name); err != nil {
			return total, err
		}
		removed, err := s.snapshots.Purge(ctx, name)
		total += removed
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// CachedPages lists the cached page keys of the named catalogs, or of every
// catalog when none are given.
func (s *Service) CachedPages(ctx context.Context, names ...string) ([]string, error) {
	if len(names) == 0 {
		return s.snapshots.Keys(ctx, "")
	}
	var keys []string
	for _, name := range names {
		if _, err := s.engine.Catalog(name); err != nil {
			return nil, err
		}
		k, err := s.snapshots.Keys(ctx, name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k...)
	}
	return keys, nil
}

// Warm rebuilds every page of the named catalogs (all when none are given)
// and stores them in the snapshot cache. Cached pages past the new last page
// are removed. It returns the number of pages written.
func (s *Service) Warm(ctx context.Context, names ...string) (int, error) {
	descs, err := s.engine.Registry().Select(names)
	if err != nil {
		return 0, err
	}

	pages := 0
	for _, desc := range descs {
		offset := 0
		for {
			p, err := s.engine.Build(ctx, desc.Name, offset)
			if err != nil {
				return pages, err
			}
			pages++
			if !p.HasMore {
				break
			}
			offset = *p.NextOffset
		}

		trimmed, err := s.snapshots.Trim(ctx, desc, offset)
		if err != nil {
			return pages, err
		}
		s.logger.Info("Catalog warmed",
			zap.String("catalog", desc.Name),
			zap.Int("trimmed", trimmed))
	}
	return pages, nil
}

// ReloadLookups reloads every lookup table.
func (s *Service) ReloadLookups(ctx context.Context) error {
	return s.lookups.Reload(ctx)
}
