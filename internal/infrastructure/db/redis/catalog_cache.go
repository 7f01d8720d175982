package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// CatalogCache caches a user's full product list in Redis.
// Key format: catalog:<user_id>. Entries expire after cacheTTL and are
// invalidated on every catalog write, so stale reads are bounded.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// Get returns the cached product list for the owner. The second return
// value reports whether the key was present.
func (c *CatalogCache) Get(ctx context.Context, ownerID int64) ([]domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("catalog cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, false, fmt.Errorf("catalog cache decode: %w", err)
	}
	return products, true, nil
}

// Set stores the owner's product list (expires after cacheTTL).
func (c *CatalogCache) Set(ctx context.Context, ownerID int64, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("catalog cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID), raw, cacheTTL).Err()
}

// Invalidate drops the owner's cached list after a catalog write.
func (c *CatalogCache) Invalidate(ctx context.Context, ownerID int64) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *CatalogCache) key(ownerID int64) string {
	return fmt.Sprintf("catalog:%d", ownerID)
}
