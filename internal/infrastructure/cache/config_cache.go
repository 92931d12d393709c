package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"expander-core-shopify-layer/internal/domain"
	"expander-core-shopify-layer/internal/ports"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisConfigCache caches resolved public configurations in Redis as one
// hash per shop, keyed by locale. Dropping the hash invalidates every
// cached locale for the shop at once.
type RedisConfigCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisConfigCache creates a new Redis-backed config cache
func NewRedisConfigCache(client *redis.Client, ttl time.Duration, logger zerolog.Logger) ports.ConfigCache {
	return &RedisConfigCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func configKey(shopDomain string) string {
	return fmt.Sprintf("config:%s", shopDomain)
}

// Get returns the cached config for a shop and locale, or (nil, nil) on a miss
func (c *RedisConfigCache) Get(ctx context.Context, shopDomain, locale string) (*domain.PublicConfig, error) {
	payload, err := c.client.HGet(ctx, configKey(shopDomain), locale).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config cache: %w", err)
	}

	var config domain.PublicConfig
	if err := json.Unmarshal(payload, &config); err != nil {
		// A stale or corrupt entry behaves like a miss
		c.logger.Warn().Err(err).Str("shop", shopDomain).Str("locale", locale).Msg("Dropping undecodable config cache entry")
		c.client.HDel(ctx, configKey(shopDomain), locale)
		return nil, nil
	}

	return &config, nil
}

// Set stores the resolved config for a shop and locale
func (c *RedisConfigCache) Set(ctx context.Context, shopDomain, locale string, config *domain.PublicConfig) error {
	payload, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	key := configKey(shopDomain)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, locale, payload)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write config cache: %w", err)
	}

	return nil
}

// Invalidate drops every cached locale for the shop
func (c *RedisConfigCache) Invalidate(ctx context.Context, shopDomain string) error {
	if err := c.client.Del(ctx, configKey(shopDomain)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate config cache: %w", err)
	}
	return nil
}
