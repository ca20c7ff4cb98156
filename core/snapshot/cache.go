package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"catalog-sync/core/catalog"

	"go.uber.org/zap"
)

// Key builds the cache key of one snapshot page:
//
//	<prefix>/<catalog>/v<schemaVersion>-p<pageSize>/<offset>
//
// Small catalogs are cached as one page under the offset segment "all".
// Changing the page size or the schema version moves every page to a new key.
func Key(prefix string, desc *catalog.Descriptor, schemaVersion int, offset int) string {
	segment := "all"
	if desc.Paginated {
		segment = strconv.Itoa(desc.NormalizeOffset(offset))
	}
	return fmt.Sprintf("%sv%d-p%d/%s", catalogPrefix(prefix, desc.Name), schemaVersion, desc.EffectivePageSize(), segment)
}

func catalogPrefix(prefix, name string) string {
	if prefix == "" {
		return name + "/"
	}
	return prefix + "/" + name + "/"
}

// Cache is the best-effort layer the engine talks to. Backend failures are
// logged and surface as misses, never as request errors.
type Cache struct {
	store         Store
	prefix        string
	schemaVersion int
	logger        *zap.Logger
}

// NewCache wraps st. schemaVersion is embedded in every key.
func NewCache(st Store, cfg Config, schemaVersion int, logger *zap.Logger) *Cache {
	return &Cache{store: st, prefix: cfg.Prefix, schemaVersion: schemaVersion, logger: logger}
}

// Key returns the key of the page of desc at offset.
func (c *Cache) Key(desc *catalog.Descriptor, offset int) string {
	return Key(c.prefix, desc, c.schemaVersion, offset)
}

// Get returns the cached page bytes. Any failure is a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.logger.Warn("Snapshot cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// Put stores page bytes. Failures are logged and dropped.
func (c *Cache) Put(ctx context.Context, key string, data []byte) {
	if err := c.store.Put(ctx, key, data); err != nil {
		c.logger.Warn("Snapshot cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Keys lists the cached pages of a catalog, or of every catalog when name is empty.
func (c *Cache) Keys(ctx context.Context, name string) ([]string, error) {
	return c.store.List(ctx, c.purgePrefix(name))
}

// Purge removes the cached pages of a catalog, or of every catalog when name
// is empty. Unlike Get and Put it reports errors: it runs on operator request.
func (c *Cache) Purge(ctx context.Context, name string) (int, error) {
	keys, err := c.Keys(ctx, name)
	if err != nil {
		return 0, err
	}
	removed, err := c.store.Delete(ctx, keys)
	c.logger.Info("Snapshot pages purged",
		zap.String("catalog", name),
		zap.Int("removed", removed),
		zap.Error(err))
	return removed, err
}

// Trim removes the cached pages of desc past lastOffset, left over from when
// the catalog had more pages. Only keys of the current schema version and
// page size are considered.
func (c *Cache) Trim(ctx context.Context, desc *catalog.Descriptor, lastOffset int) (int, error) {
	if !desc.Paginated {
		return 0, nil
	}
	keys, err := c.Keys(ctx, desc.Name)
	if err != nil {
		return 0, err
	}

	pagePrefix := strings.TrimSuffix(c.Key(desc, 0), "0")
	var stale []string
	for _, key := range keys {
		segment, ok := strings.CutPrefix(key, pagePrefix)
		if !ok {
			continue
		}
		offset, err := strconv.Atoi(segment)
		if err != nil || offset <= lastOffset {
			continue
		}
		stale = append(stale, key)
	}
	if len(stale) == 0 {
		return 0, nil
	}
	return c.store.Delete(ctx, stale)
}

func (c *Cache) purgePrefix(name string) string {
	if name == "" {
		if c.prefix == "" {
			return ""
		}
		return c.prefix + "/"
	}
	return catalogPrefix(c.prefix, name)
}
