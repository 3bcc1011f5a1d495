package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/orbitrondev/mom-service/pkg/config"
)

// summaryKey is the single cache key for the action item summary view.
const summaryKey = "mom:action-items:summary"

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// RedisSummaryCache caches the rendered summary payload in Redis. Cache
// failures are logged and treated as misses so the handler always falls
// through to the database.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisSummaryCache creates a Redis-backed summary cache
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached payload, or false on a miss or error
func (c *RedisSummaryCache) Get(ctx context.Context) ([]byte, bool) {
	payload, err := c.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("summary cache get failed", zap.Error(err))
		}
		return nil, false
	}
	return payload, true
}

// Set stores the payload with the configured TTL
func (c *RedisSummaryCache) Set(ctx context.Context, payload []byte) {
	if err := c.client.Set(ctx, summaryKey, payload, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Warn("summary cache set failed", zap.Error(err))
	}
}

// Invalidate drops the cached payload
func (c *RedisSummaryCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, summaryKey).Err(); err != nil && c.logger != nil {
		c.logger.Warn("summary cache invalidate failed", zap.Error(err))
	}
}
