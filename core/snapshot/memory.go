package snapshot

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps pages in process memory. Pages are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	pages map[string][]byte
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pages: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.pages[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (s *MemoryStore) Put(ctx context.Context, key string, data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.pages[key] = buf
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var keys []string
	for key := range s.pages {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemoryStore) Delete(ctx context.Context, keys []string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for _, key := range keys {
		if _, ok := s.pages[key]; ok {
			delete(s.pages, key)
			removed++
		}
	}
	return removed, nil
}

// NoopStore disables snapshot caching: every Get misses and Put discards.
type NoopStore struct{}

func (NoopStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, ErrNotFound }

func (NoopStore) Put(ctx context.Context, key string, data []byte) error { return nil }

func (NoopStore) List(ctx context.Context, prefix string) ([]string, error) { return nil, nil }

func (NoopStore) Delete(ctx context.Context, keys []string) (int, error) { return 0, nil }
