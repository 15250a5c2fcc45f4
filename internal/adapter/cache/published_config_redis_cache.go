package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"freight_pricing/internal/domain/entities"
	"freight_pricing/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	publishedConfigKey = "pricing:config:published"
	// publishedVersionKey holds the highest version the cache has seen. It has
	// no TTL so a fill that lost a race stays rejected after the blob expires.
	publishedVersionKey = "pricing:config:published:version"
)

// setIfNewer writes KEYS[1] only when ARGV[2] is not below the watermark in
// KEYS[2]. ARGV[3] is the TTL in milliseconds, 0 for none.
var setIfNewer = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[2]) or '0')
local version = tonumber(ARGV[2])
if version < current then
	return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ttl)
else
	redis.call('SET', KEYS[1], ARGV[1])
end
redis.call('SET', KEYS[2], ARGV[2])
return 1
`)

// raiseAndDrop lifts the watermark to ARGV[1] and deletes the blob.
var raiseAndDrop = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[2]) or '0')
if tonumber(ARGV[1]) > current then
	redis.call('SET', KEYS[2], ARGV[1])
end
redis.call('DEL', KEYS[1])
return 1
`)

// PublishedConfigRedisCache stores the active snapshot as JSON with a TTL.
// Writes are versioned: a snapshot older than one already written is ignored.
type PublishedConfigRedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IPublishedConfigCache = (*PublishedConfigRedisCache)(nil)

func NewPublishedConfigRedisCache(client *redis.Client, ttl time.Duration) *PublishedConfigRedisCache {
	return &PublishedConfigRedisCache{client: client, ttl: ttl}
}

func (c *PublishedConfigRedisCache) Get(ctx context.Context) (entities.PublishedConfig, bool, error) {
	data, err := c.client.Get(ctx, publishedConfigKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.PublishedConfig{}, false, nil
	}
	if err != nil {
		return entities.PublishedConfig{}, false, fmt.Errorf("cache.Get: %w", err)
	}

	var cfg entities.PublishedConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return entities.PublishedConfig{}, false, fmt.Errorf("cache.Get: unmarshal failure: %w", err)
	}
	if cfg.Data == nil {
		cfg.Data = entities.PricingConfiguration{}
	}
	return cfg, true, nil
}

// Set writes cfg unless a newer version was already cached or invalidated.
// A rejected write is not an error.
func (c *PublishedConfigRedisCache) Set(ctx context.Context, cfg entities.PublishedConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cache.Set: marshal: %w", err)
	}

	keys := []string{publishedConfigKey, publishedVersionKey}
	if err := setIfNewer.Run(ctx, c.client, keys, data, cfg.Version, c.ttl.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("cache.Set: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot and refuses later fills older than version.
func (c *PublishedConfigRedisCache) Invalidate(ctx context.Context, version int) error {
	keys := []string{publishedConfigKey, publishedVersionKey}
	if err := raiseAndDrop.Run(ctx, c.client, keys, version).Err(); err != nil {
		return fmt.Errorf("cache.Invalidate: %w", err)
	}
	return nil
}

// NoopPublishedConfigCache is used when Redis is not configured: every read is a miss.
type NoopPublishedConfigCache struct{}

var _ interfaces.IPublishedConfigCache = NoopPublishedConfigCache{}

func (NoopPublishedConfigCache) Get(context.Context) (entities.PublishedConfig, bool, error) {
	return entities.PublishedConfig{}, false, nil
}

func (NoopPublishedConfigCache) Set(context.Context, entities.PublishedConfig) error { return nil }

func (NoopPublishedConfigCache) Invalidate(context.Context, int) error { return nil }
