// Package cache defines the port the storefront's shop cache is built on.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-valued key-value store with per-key TTL. Get reports a
// miss via the bool, not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
