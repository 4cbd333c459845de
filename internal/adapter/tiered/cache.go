// Package tiered chains the in-process shop cache in front of the shared
// JetStream KV one, so a shop resolved by any instance is warm for all of
// them.
package tiered

import (
	"context"
	"time"

	"github.com/brandini/brandini/internal/port/cache"
)

// Cache reads through two levels: the per-instance cache first, the shared
// one second. Writes and invalidations go to both, so a theme change
// propagates to every instance once its local entry expires.
type Cache struct {
	local    cache.Cache
	shared   cache.Cache
	localTTL time.Duration
}

// New creates a tiered cache. localTTL bounds how stale a backfilled local
// entry may go relative to the shared level.
func New(local, shared cache.Cache, localTTL time.Duration) *Cache {
	return &Cache{local: local, shared: shared, localTTL: localTTL}
}

// Get checks the local level, then the shared one, backfilling the local
// level on a shared hit.
func (c *Cache) Get(ctx context.Context, key string) (data []byte, ok bool, err error) {
	val, found, err := c.local.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if found {
		return val, true, nil
	}

	val, found, err = c.shared.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if found {
		_ = c.local.Set(ctx, key, val, c.localTTL)
		return val, true, nil
	}

	return nil, false, nil
}

// Set writes to both levels.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.local.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	return c.shared.Set(ctx, key, value, ttl)
}

// Delete removes the key from both levels. Other instances keep their local
// entry until localTTL runs out.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.local.Delete(ctx, key); err != nil {
		return err
	}
	return c.shared.Delete(ctx, key)
}
