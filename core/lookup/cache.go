package lookup

import (
	"context"
	"fmt"
	"sync"

	"catalog-sync/core/store"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache holds the lookup tables of one service instance. Tables are loaded on
// first use and kept until explicitly invalidated; there is no TTL.
type Cache struct {
	store  store.Store
	logger *zap.Logger
	specs  map[string]Spec

	mu     sync.RWMutex
	tables map[string]*Table
	// gens counts invalidations and reloads per table. A cold load only
	// stores its result when the generation it started under is current.
	gens map[string]uint64
	sf   singleflight.Group
}

// Tables is a set of loaded tables, keyed by lookup name.
type Tables map[string]*Table

// Resolve looks a token up in the named table. Missing tables and unknown
// keys resolve to ok=false.
func (t Tables) Resolve(name string, keys ...int64) (string, bool) {
	table, ok := t[name]
	if !ok {
		return "", false
	}
	return table.Get(keys...)
}

// NewCache creates a cache for the given lookup specs.
func NewCache(st store.Store, logger *zap.Logger, specs ...Spec) (*Cache, error) {
	c := &Cache{
		store:  st,
		logger: logger,
		specs:  make(map[string]Spec, len(specs)),
		tables: make(map[string]*Table),
		gens:   make(map[string]uint64),
	}
	for _, spec := range specs {
		if len(spec.KeyColumns) < 1 || len(spec.KeyColumns) > 2 {
			return nil, fmt.Errorf("lookup %s: one or two key columns are supported", spec.Name)
		}
		if _, dup := c.specs[spec.Name]; dup {
			return nil, fmt.Errorf("lookup %s registered twice", spec.Name)
		}
		c.specs[spec.Name] = spec
	}
	return c, nil
}

// Names returns the registered lookup names.
func (c *Cache) Names() []string {
	names := make([]string, 0, len(c.specs))
	for name := range c.specs {
		names = append(names, name)
	}
	return names
}

// Table returns the named table, loading it on first use. Concurrent cold
// callers share one load.
func (c *Cache) Table(ctx context.Context, name string) (*Table, error) {
	c.mu.RLock()
	t, ok := c.tables[name]
	gen := c.gens[name]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	spec, ok := c.specs[name]
	if !ok {
		return nil, fmt.Errorf("unknown lookup %q", name)
	}

	// Callers that arrive after an invalidation never join a load started before it.
	key := fmt.Sprintf("%s#%d", name, gen)
	res, err, _ := c.sf.Do(key, func() (any, error) {
		c.mu.RLock()
		t, ok := c.tables[name]
		c.mu.RUnlock()
		if ok {
			return t, nil
		}

		t, err := c.load(ctx, spec)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if current, ok := c.tables[name]; ok {
			return current, nil
		}
		if c.gens[name] == gen {
			c.tables[name] = t
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*Table), nil
}

// EnsureLoaded returns the named tables, loading the ones that are not loaded
// yet. The result stays valid even if the cache is invalidated afterwards.
func (c *Cache) EnsureLoaded(ctx context.Context, names ...string) (Tables, error) {
	tables := make(Tables, len(names))
	for _, name := range names {
		t, err := c.Table(ctx, name)
		if err != nil {
			return nil, err
		}
		tables[name] = t
	}
	return tables, nil
}

// Invalidate drops the named tables so the next use reloads them.
func (c *Cache) Invalidate(names ...string) {
	c.mu.Lock()
	for _, name := range names {
		delete(c.tables, name)
		c.gens[name]++
	}
	c.mu.Unlock()
}

// InvalidateAll drops every loaded table.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.tables = make(map[string]*Table)
	for name := range c.specs {
		c.gens[name]++
	}
	c.mu.Unlock()
}

// Reload loads the named tables (all when none are given) and swaps them in.
// Readers keep using the previous table until the new one is ready.
func (c *Cache) Reload(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		names = c.Names()
	}
	for _, name := range names {
		spec, ok := c.specs[name]
		if !ok {
			return fmt.Errorf("unknown lookup %q", name)
		}
		t, err := c.load(ctx, spec)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.tables[name] = t
		c.gens[name]++
		c.mu.Unlock()
	}
	return nil
}

func (c *Cache) load(ctx context.Context, spec Spec) (*Table, error) {
	rows, err := c.store.Tokens(ctx, spec.Table, spec.KeyColumns, spec.TokenColumn)
	if err != nil {
		return nil, fmt.Errorf("load lookup %s: %w", spec.Name, err)
	}

	t := newTable(spec.Name, len(spec.KeyColumns))
	for _, row := range rows {
		t.put(row.Keys, row.Token)
	}

	c.logger.Info("Lookup table loaded",
		zap.String("lookup", spec.Name),
		zap.Int("entries", t.Len()))
	return t, nil
}
