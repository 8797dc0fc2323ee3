package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
)

type fileEntry struct {
	Value     []byte     `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// FileRepository persists state as a single JSON document, rewritten
// atomically on every change
type FileRepository struct {
	mu    sync.Mutex
	path  string
	clock TimeProvider
}

// NewFileRepository stores state at path, creating parent directories on first write
func NewFileRepository(path string) *FileRepository {
	return NewFileRepositoryWithClock(path, systemClock{})
}

func NewFileRepositoryWithClock(path string, clock TimeProvider) *FileRepository {
	return &FileRepository{
		path:  path,
		clock: clock,
	}
}

func (r *FileRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, vgcerr.InvalidArgument("key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return nil, err
	}

	e, ok := entries[key]
	if !ok || (e.ExpiresAt != nil && !r.clock.Now().Before(*e.ExpiresAt)) {
		return nil, vgcerr.NotFoundf("key '%s' not found", key).WithMeta("key", key)
	}
	return e.Value, nil
}

func (r *FileRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return vgcerr.InvalidArgument("key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}

	e := fileEntry{Value: value}
	if ttl > 0 {
		expires := r.clock.Now().Add(ttl)
		e.ExpiresAt = &expires
	}
	entries[key] = e

	return r.save(entries)
}

func (r *FileRepository) Delete(ctx context.Context, key string) error {
	if key == "" {
		return vgcerr.InvalidArgument("key is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)

	return r.save(entries)
}

func (r *FileRepository) load() (map[string]fileEntry, error) {
	entries := make(map[string]fileEntry)

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to read local store").
			WithMeta("path", r.path)
	}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "local store is corrupt").
			WithMeta("path", r.path)
	}
	return entries, nil
}

func (r *FileRepository) save(entries map[string]fileEntry) error {
	now := r.clock.Now()
	for k, e := range entries {
		if e.ExpiresAt != nil && !now.Before(*e.ExpiresAt) {
			delete(entries, k)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to encode local store")
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to create local store directory").
			WithMeta("path", r.path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".localstore-*")
	if err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to write local store")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to write local store")
	}
	if err := tmp.Close(); err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to write local store")
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to replace local store").
			WithMeta("path", r.path)
	}
	return nil
}
