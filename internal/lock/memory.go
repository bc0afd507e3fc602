package lock

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Velocidex/ttlcache/v2"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is a Store local to one process. Entries are evicted by the
// cache after their ttl; lookups also compare the stored expiry so an entry
// is never seen live past its deadline.
type MemoryStore struct {
	mu    sync.Mutex
	cache *ttlcache.Cache
	now   func() time.Time
}

// NewMemoryStore creates an empty MemoryStore. Close releases its janitor.
func NewMemoryStore() *MemoryStore {
	cache := ttlcache.NewCache()
	cache.SkipTTLExtensionOnHit(true)
	return &MemoryStore{cache: cache, now: time.Now}
}

func (s *MemoryStore) live(key string) (memoryEntry, bool) {
	v, err := s.cache.Get(key)
	if err != nil {
		return memoryEntry{}, false
	}
	e, ok := v.(memoryEntry)
	if !ok || !s.now().Before(e.expiresAt) {
		return memoryEntry{}, false
	}
	return e, true
}

func (s *MemoryStore) SetIfAbsent(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.live(key); ok {
		return false, nil
	}
	e := memoryEntry{value: value, expiresAt: s.now().Add(ttl)}
	if err := s.cache.SetWithTTL(key, e, ttl); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) ExtendTTL(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(key)
	if !ok {
		return false, nil
	}
	e.expiresAt = s.now().Add(ttl)
	if err := s.cache.SetWithTTL(key, e, ttl); err != nil {
		return false, err
	}
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cache.Remove(key); err != nil && !errors.Is(err, ttlcache.ErrNotFound) {
		return err
	}
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.live(key)
	return ok, nil
}

// Close stops the cache janitor.
func (s *MemoryStore) Close() error {
	return s.cache.Close()
}
