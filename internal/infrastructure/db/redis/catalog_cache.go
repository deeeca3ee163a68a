package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

const catalogKey = "catalog:sweets"

// CatalogCache caches the full sweet listing in Redis under a single key.
// It is strictly best-effort: any Redis failure is logged and treated as a
// miss so the request falls through to the document store.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
// If ttl <= 0 a one-minute default is used.
func NewCatalogCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *CatalogCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CatalogCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached listing, or (nil, false) on a miss.
func (c *CatalogCache) Get(ctx context.Context) ([]*domain.Sweet, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("catalog cache read failed")
		}
		return nil, false
	}

	var sweets []*domain.Sweet
	if err := json.Unmarshal(raw, &sweets); err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache payload corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return sweets, true
}

// Set stores the listing with the configured TTL.
func (c *CatalogCache) Set(ctx context.Context, sweets []*domain.Sweet) {
	raw, err := json.Marshal(sweets)
	if err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, catalogKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache write failed")
	}
}

// Invalidate drops the cached listing. Called after every sweet mutation.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
