package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-sync/core/catalog"
	"catalog-sync/core/lookup"
	"catalog-sync/core/render"
	"catalog-sync/core/snapshot"
	"catalog-sync/core/store"
	"catalog-sync/core/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// Engine serves catalog pages, deltas and watermarks.
type Engine struct {
	registry  *catalog.Registry
	store     store.Store
	lookups   *lookup.Cache
	snapshots *snapshot.Cache
	logger    *zap.Logger

	scans          *semaphore.Weighted
	pages          singleflight.Group
	watermarkLimit int
	now            func() time.Time
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for page timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an engine.
func New(cfg Config, registry *catalog.Registry, st store.Store, lookups *lookup.Cache, snapshots *snapshot.Cache, logger *zap.Logger, opts ...Option) *Engine {
	scans := cfg.MaxConcurrentScans
	if scans <= 0 {
		scans = 4
	}
	limit := cfg.WatermarkConcurrency
	if limit <= 0 {
		limit = 8
	}

	e := &Engine{
		registry:       registry,
		store:          st,
		lookups:        lookups,
		snapshots:      snapshots,
		logger:         logger,
		scans:          semaphore.NewWeighted(int64(scans)),
		watermarkLimit: limit,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the catalogs served by the engine.
func (e *Engine) Registry() *catalog.Registry {
	return e.registry
}

// Catalog returns the named descriptor or ErrUnknownCatalog.
func (e *Engine) Catalog(name string) (*catalog.Descriptor, error) {
	desc, ok := e.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCatalog, name)
	}
	return desc, nil
}

// Page returns the snapshot page of a catalog at offset. Offsets are floored
// to the page grid; small catalogs ignore them. Pages are served from the
// snapshot cache when present and written to it after a build.
func (e *Engine) Page(ctx context.Context, name string, offset int) (*Page, error) {
	desc, err := e.Catalog(name)
	if err != nil {
		return nil, err
	}
	offset = desc.NormalizeOffset(offset)
	key := e.snapshots.Key(desc, offset)

	if p, ok := e.cached(ctx, desc, key); ok {
		return p, nil
	}

	res, err, _ := e.pages.Do(key, func() (any, error) {
		if p, ok := e.cached(ctx, desc, key); ok {
			return p, nil
		}
		p, err := e.build(ctx, desc, store.ScanQuery{Offset: offset}, offset)
		if err != nil {
			return nil, err
		}
		e.snapshots.Put(ctx, key, p.body)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*Page), nil
}

// Build renders a snapshot page bypassing the cache, then stores it. It is
// used to warm the cache.
func (e *Engine) Build(ctx context.Context, name string, offset int) (*Page, error) {
	desc, err := e.Catalog(name)
	if err != nil {
		return nil, err
	}
	offset = desc.NormalizeOffset(offset)
	p, err := e.build(ctx, desc, store.ScanQuery{Offset: offset}, offset)
	if err != nil {
		return nil, err
	}
	e.snapshots.Put(ctx, e.snapshots.Key(desc, offset), p.body)
	return p, nil
}

// Delta returns the records of a catalog changed after cursor, tombstones
// included. Offset is relative to the filtered scan. Deltas never touch the
// snapshot cache.
func (e *Engine) Delta(ctx context.Context, name string, cursor store.Cursor, offset int) (*Page, error) {
	desc, err := e.Catalog(name)
	if err != nil {
		return nil, err
	}
	if !desc.Delta {
		return nil, fmt.Errorf("%w: %s", ErrDeltaUnsupported, name)
	}
	if offset < 0 {
		offset = 0
	}

	q := store.ScanQuery{Offset: offset, Cursor: &cursor}
	p, err := e.build(ctx, desc, q, offset)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (e *Engine) cached(ctx context.Context, desc *catalog.Descriptor, key string) (*Page, bool) {
	data, ok := e.snapshots.Get(ctx, key)
	if !ok {
		return nil, false
	}
	p, err := decodePage(data, !desc.Paginated)
	if err != nil {
		e.logger.Warn("Discarding unreadable snapshot page", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return p, true
}

// build scans, trims and renders one page.
func (e *Engine) build(ctx context.Context, desc *catalog.Descriptor, q store.ScanQuery, offset int) (*Page, error) {
	timestamp := e.now().Unix()

	pageSize := desc.EffectivePageSize()
	if pageSize > 0 {
		q.Limit = pageSize + 1
	}

	rows, err := e.scan(ctx, desc, q)
	if err != nil {
		return nil, e.storageError(desc, err)
	}

	p := &Page{Timestamp: timestamp, small: !desc.Paginated}
	if pageSize > 0 && len(rows) > pageSize {
		rows = rows[:pageSize]
		next := offset + pageSize
		p.HasMore = true
		p.NextOffset = &next
	}

	if q.Cursor != nil && len(rows) > 0 {
		last := rows[len(rows)-1]
		p.NextCursor = &NextCursor{Updated: utils.ToInt64(last["updated"])}
		if desc.TokenColumn != "" {
			p.NextCursor.After = utils.ToString(last[desc.TokenColumn])
		}
	}

	tables, err := e.lookups.EnsureLoaded(ctx, desc.LookupRefs()...)
	if err != nil {
		return nil, e.storageError(desc, err)
	}
	inline, err := render.LoadInline(ctx, e.store, desc)
	if err != nil {
		return nil, e.storageError(desc, err)
	}

	p.Items = render.Render(desc, rows, tables, inline)
	if err := p.encode(); err != nil {
		return nil, err
	}
	return p, nil
}

// scan runs a storage scan, holding a scan slot for paginated catalogs.
func (e *Engine) scan(ctx context.Context, desc *catalog.Descriptor, q store.ScanQuery) ([]store.Row, error) {
	if desc.Paginated {
		if err := e.scans.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer e.scans.Release(1)
	}
	return e.store.Scan(ctx, desc, q)
}

func (e *Engine) storageError(desc *catalog.Descriptor, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	e.logger.Error("Catalog storage failure", zap.String("catalog", desc.Name), zap.Error(err))
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, desc.Name, err)
}
