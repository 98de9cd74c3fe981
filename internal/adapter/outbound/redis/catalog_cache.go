package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/washdesk/server/internal/model"
	"github.com/washdesk/server/internal/port/outbound"
)

const catalogKey = "wizard:catalog"

// catalogCache implements outbound.CatalogCachePort on Redis.
type catalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a new catalog cache adapter.
func NewCatalogCache(client *redis.Client, ttl time.Duration) outbound.CatalogCachePort {
	return &catalogCache{client: client, ttl: ttl}
}

func (c *catalogCache) Get(ctx context.Context) (*model.Catalog, error) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog: %w", err)
	}

	var catalog model.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &catalog, nil
}

func (c *catalogCache) Set(ctx context.Context, catalog *model.Catalog) error {
	raw, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return c.client.Set(ctx, catalogKey, raw, c.ttl).Err()
}

func (c *catalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogKey).Err()
}

// Compile-time check
var _ outbound.CatalogCachePort = (*catalogCache)(nil)
