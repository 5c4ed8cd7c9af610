package sales

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cachePrefix     = "salespulse:dashboard"
	cacheVersionKey = cachePrefix + ":version"
)

// Cache keeps the reshaped dashboard in Redis under a versioned key. Seeding
// bumps the version; entries of older versions are never read again and age
// out by TTL. A nil Cache, a nil client or a zero TTL disables caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}

// key returns the dashboard key of the current version. A missing version
// counter reads as zero.
func (c *Cache) key(ctx context.Context) (string, error) {
	ver, err := c.client.Get(ctx, cacheVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("sales: cache version: %w", err)
	}
	return fmt.Sprintf("%s:v%d", cachePrefix, ver), nil
}

// Get returns the cached dashboard for the current version. ok is false on a
// miss or an undecodable entry.
func (c *Cache) Get(ctx context.Context) (dash Dashboard, key string, ok bool, err error) {
	if !c.enabled() {
		return Dashboard{}, "", false, nil
	}
	key, err = c.key(ctx)
	if err != nil {
		return Dashboard{}, "", false, err
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Dashboard{}, key, false, nil
	}
	if err != nil {
		return Dashboard{}, key, false, fmt.Errorf("sales: cache get: %w", err)
	}
	if json.Unmarshal(raw, &dash) != nil {
		return Dashboard{}, key, false, nil
	}
	return dash, key, true, nil
}

// Put stores dash under key for the configured TTL.
func (c *Cache) Put(ctx context.Context, key string, dash Dashboard) error {
	if !c.enabled() || key == "" {
		return nil
	}
	raw, err := json.Marshal(dash)
	if err != nil {
		return fmt.Errorf("sales: cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("sales: cache set: %w", err)
	}
	return nil
}

// Bump invalidates every cached dashboard by incrementing the version.
func (c *Cache) Bump(ctx context.Context) error {
	if !c.enabled() {
		return nil
	}
	return c.client.Incr(ctx, cacheVersionKey).Err()
}
