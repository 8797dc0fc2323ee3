package localstore

import (
	"context"
	"sync"
	"time"

	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// InMemoryRepository keeps state for the life of the process
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]entry
	clock   TimeProvider
}

// NewInMemoryRepository creates an empty in-memory store
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithClock(systemClock{})
}

func NewInMemoryRepositoryWithClock(clock TimeProvider) *InMemoryRepository {
	return &InMemoryRepository{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

func (r *InMemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, vgcerr.InvalidArgument("key is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	if !ok || e.expired(r.clock.Now()) {
		return nil, vgcerr.NotFoundf("key '%s' not found", key).WithMeta("key", key)
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (r *InMemoryRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return vgcerr.InvalidArgument("key is required")
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	e := entry{value: stored}
	if ttl > 0 {
		e.expiresAt = r.clock.Now().Add(ttl)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = e
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return vgcerr.InvalidArgument("key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}
