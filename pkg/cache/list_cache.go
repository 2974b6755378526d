package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ListItemsCacheTTL is the time-to-live for a cached item list.
	ListItemsCacheTTL = 10 * time.Minute

	listItemsKeyPrefix = "todos:list"
)

// ErrCacheMiss is returned by Get when the list is not cached.
var ErrCacheMiss = errors.New("cache miss")

// CachedItem is the denormalized read model of one item stored in Redis.
type CachedItem struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// ListItemsCache caches the ordered items of a list as a single JSON value,
// so a hit returns exactly the order the store produced.
// Key format: "todos:list:{listID}"
type ListItemsCache struct {
	client *RedisClient
}

// NewListItemsCache creates a new ListItemsCache backed by the given RedisClient.
// A nil client yields a nil cache, which callers treat as "caching disabled".
func NewListItemsCache(r *RedisClient) *ListItemsCache {
	if r == nil {
		return nil
	}
	return &ListItemsCache{client: r}
}

// Get returns the cached items of a list, or ErrCacheMiss.
func (c *ListItemsCache) Get(ctx context.Context, listID int64) ([]CachedItem, error) {
	data, err := c.client.Client().Get(ctx, Key(listID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var items []CachedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return items, nil
}

// Set stores the items of a list with ListItemsCacheTTL.
func (c *ListItemsCache) Set(ctx context.Context, listID int64, items []CachedItem) error {
	if items == nil {
		items = []CachedItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, Key(listID), data, ListItemsCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate removes the cached items of a list.
func (c *ListItemsCache) Invalidate(ctx context.Context, listID int64) error {
	if err := c.client.Client().Del(ctx, Key(listID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Key builds the Redis key: "todos:list:{listID}"
func Key(listID int64) string {
	return fmt.Sprintf("%s:%d", listItemsKeyPrefix, listID)
}
