package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached item projections.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "catalog:item"
)

// CachedItem is the denormalized item projection stored in Redis as JSON.
// It mirrors the API read model: brand and category labels are resolved,
// so a cache hit needs no joins.
type CachedItem struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Slug              string  `json:"slug"`
	Description       string  `json:"description"`
	BrandID           int64   `json:"brandId"`
	BrandLabel        string  `json:"brandLabel"`
	CategoryID        int64   `json:"categoryId"`
	CategoryLabel     string  `json:"categoryLabel"`
	Price             float64 `json:"price"`
	AvailableStock    int     `json:"availableStock"`
	MaxStockThreshold int     `json:"maxStockThreshold"`
}

// ItemCache provides read/write operations for cached item projections.
// Key format: "catalog:item:{id}".
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates an ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached projection by item id.
// Returns redis.Nil when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, itemID int64) (*CachedItem, error) {
	raw, err := c.client.Client().Get(ctx, c.key(itemID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var item CachedItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &item, nil
}

// Set writes a projection with the standard TTL.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(item.ID), raw, ItemCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached projection. Deleting a missing key is not an error.
func (c *ItemCache) Delete(ctx context.Context, itemID int64) error {
	if err := c.client.Client().Del(ctx, c.key(itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *ItemCache) key(itemID int64) string {
	return fmt.Sprintf("%s:%d", itemCacheKeyPrefix, itemID)
}
