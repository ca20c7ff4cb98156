package snapshot

import (
	"context"
	"errors"
	"fmt"

	"catalog-sync/core/storage"
)

var (
	// ErrNotFound is returned by drivers when a key holds no page.
	ErrNotFound = errors.New("snapshot not found")
	// ErrCacheUnavailable wraps driver failures. It never leaves this package
	// through Cache, which degrades to a miss instead.
	ErrCacheUnavailable = errors.New("snapshot cache unavailable")
)

// Store is a snapshot cache backend. Keys are slash separated paths.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	// List returns the keys starting with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
	// Delete removes the given keys and returns how many were removed.
	Delete(ctx context.Context, keys []string) (int, error)
}

// Open builds the backend selected by cfg. The s3 driver ensures the bucket
// exists before returning.
func Open(ctx context.Context, cfg Config, storageCfg storage.Config) (Store, error) {
	switch cfg.Driver {
	case DriverS3:
		client, err := storage.NewClient(storageCfg)
		if err != nil {
			return nil, err
		}
		if err := storage.EnsureBucket(ctx, client, storageCfg.Bucket, storageCfg.Region); err != nil {
			return nil, err
		}
		return NewS3Store(client, storageCfg.Bucket), nil
	case DriverFile:
		return NewFileStore(cfg.Dir)
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverNone, "":
		return NoopStore{}, nil
	default:
		return nil, fmt.Errorf("unsupported snapshot driver %q", cfg.Driver)
	}
}

func unavailable(op, key string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrCacheUnavailable, op, key, err)
}
