package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ResultCache stores solver results in redis. Failures are soft: a broken
// cache degrades to a database round-trip, never to a failed request.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
	gen    atomic.Uint64
	log    zerolog.Logger
}

func NewResultCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *ResultCache {
	return &ResultCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *ResultCache) Get(ctx context.Context, key string) ([]string, bool) {
	b, err := c.client.Get(ctx, c.redisKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		}
		return nil, false
	}

	var words []string
	if err := json.Unmarshal(b, &words); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache entry broken")
		return nil, false
	}
	return words, true
}

func (c *ResultCache) Put(ctx context.Context, key string, words []string) {
	b, err := json.Marshal(words)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.redisKey(key), b, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache put failed")
	}
}

// Bump invalidates every cached result by rotating the key namespace.
// Old entries age out via their TTL.
func (c *ResultCache) Bump() {
	c.gen.Add(1)
}

func (c *ResultCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *ResultCache) redisKey(key string) string {
	return fmt.Sprintf("%s:g%d", key, c.gen.Load())
}
