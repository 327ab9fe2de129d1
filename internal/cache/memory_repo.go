package cache

import (
	"context"
	"sync"
)

// MemoryRepository keeps blobs in process memory. Used when the on-disk
// cache is disabled and in tests.
type MemoryRepository struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{blobs: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.blobs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	r.blobs[key] = v
	return nil
}
