package repository

import (
	"context"
)

// KVStore is the persistent key-value store scoped per installation.
// Values are raw JSON documents.
type KVStore interface {
	// Get returns nil, nil when the key is unset
	Get(ctx context.Context, userID int64, key string) ([]byte, error)
	Set(ctx context.Context, userID int64, key string, value []byte) error
	Delete(ctx context.Context, userID int64, key string) error
}

// Compactor is implemented by stores that can reclaim space
type Compactor interface {
	Compact(ctx context.Context) error
}
