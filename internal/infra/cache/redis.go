package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"venue-desk/internal/pkg/config"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/shared"
)

const (
	defaultPrefix = "venue-desk:availability"
	generationKey = "gen"
)

// RedisAvailabilityCache namespaces entries under a generation counter.
// Invalidate bumps the generation, which orphans every older entry until its TTL runs out.
type RedisAvailabilityCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errs.Wrap(err, "failed to connect to redis")
	}
	return nil
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{client: client, prefix: defaultPrefix, ttl: ttl}
}

// WithPrefix returns a copy writing under prefix; tests use it to isolate runs.
func (c *RedisAvailabilityCache) WithPrefix(prefix string) *RedisAvailabilityCache {
	cp := *c
	cp.prefix = prefix
	return &cp
}

// Get reports the generation it read so a miss can be filled under the same one.
func (c *RedisAvailabilityCache) Get(ctx context.Context, key string, dst any) (shared.CacheGeneration, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return shared.NoCacheGeneration, false, err
	}
	raw, err := c.client.Get(ctx, c.entryKey(gen, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return gen, false, nil
		}
		return gen, false, errs.Wrap(err, "failed to read availability cache")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return gen, false, errs.Wrap(err, "failed to decode availability cache entry")
	}
	return gen, true, nil
}

// Set writes under gen, not the current generation; an entry for a retired
// generation is never read again.
func (c *RedisAvailabilityCache) Set(ctx context.Context, gen shared.CacheGeneration, key string, value any) error {
	if gen == shared.NoCacheGeneration {
		return nil
	}
	k := c.entryKey(gen, key)
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "failed to encode availability cache entry")
	}
	if err := c.client.Set(ctx, k, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write availability cache")
	}
	return nil
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.prefix+":"+generationKey).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate availability cache")
	}
	return nil
}

func (c *RedisAvailabilityCache) generation(ctx context.Context) (shared.CacheGeneration, error) {
	gen, err := c.client.Get(ctx, c.prefix+":"+generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return shared.NoCacheGeneration, errs.Wrap(err, "failed to read availability cache generation")
	}
	return shared.CacheGeneration(gen), nil
}

func (c *RedisAvailabilityCache) entryKey(gen shared.CacheGeneration, key string) string {
	return fmt.Sprintf("%s:%d:%s", c.prefix, gen, key)
}
