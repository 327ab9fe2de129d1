package cache

import "context"

// Repository is raw key/value persistence for cache blobs.
type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or overwrites the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}
