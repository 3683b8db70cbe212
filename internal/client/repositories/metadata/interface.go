// Package metadata stores small key/value facts about the local client
// installation, such as the salt used to seal persisted cookies.
package metadata

import (
	"context"
)

type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// GetOrCreate returns the stored value, first storing gen() if the key
	// is absent.
	GetOrCreate(ctx context.Context, key string, gen func() []byte) ([]byte, error)
}
