package service

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/print-orders/internal/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	barcodeKeyPrefix      = "print:barcode:"
	defaultRedisOpTimeout = 250 * time.Millisecond
)

// RedisCache is a cache.Cache shared between instances through Redis.
// Redis errors are logged and treated as misses so printing never depends on it.
type RedisCache struct {
	client    redis.UniversalClient
	ttl       time.Duration
	opTimeout time.Duration
}

// RedisCacheOption configures a RedisCache.
type RedisCacheOption func(*RedisCache)

// WithRedisOpTimeout bounds each Redis round trip.
func WithRedisOpTimeout(d time.Duration) RedisCacheOption {
	return func(c *RedisCache) {
		if d > 0 {
			c.opTimeout = d
		}
	}
}

// NewRedisCache creates a Redis-backed cache whose entries expire after ttl.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration, opts ...RedisCacheOption) *RedisCache {
	c := &RedisCache{
		client:    client,
		ttl:       ttl,
		opTimeout: defaultRedisOpTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *RedisCache) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.opTimeout)
}

// Get returns the cached bytes for key.
func (c *RedisCache) Get(key string) ([]byte, bool) {
	ctx, cancel := c.ctx()
	defer cancel()

	val, err := c.client.Get(ctx, barcodeKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheOperation("get", "miss")
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Redis cache get failed")
		metrics.RecordCacheOperation("get", "error")
		return nil, false
	}
	metrics.RecordCacheOperation("get", "hit")
	return val, true
}

// Set stores value under key with the configured TTL.
func (c *RedisCache) Set(key string, value []byte) {
	ctx, cancel := c.ctx()
	defer cancel()

	if err := c.client.Set(ctx, barcodeKeyPrefix+key, value, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Redis cache set failed")
		metrics.RecordCacheOperation("set", "error")
		return
	}
	metrics.RecordCacheOperation("set", "success")
}

// Stop is a no-op; the client is owned by the caller.
func (c *RedisCache) Stop() {}
