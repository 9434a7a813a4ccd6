package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wanderplan/backend/internal/domain/weather"
	"github.com/wanderplan/backend/internal/infrastructure/config"
)

const weatherKeyPrefix = "weather:"

// RedisWeatherCache stores serialized weather reports in Redis so repeated
// lookups for the same location do not hit the upstream provider. Entries
// expire via TTL; callers decide what to do on a miss.
type RedisWeatherCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisWeatherCache connects to Redis using the application config and
// verifies the connection with a short ping.
func NewRedisWeatherCache(cfg config.RedisConfig) (*RedisWeatherCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisWeatherCache{
		client:    client,
		keyPrefix: weatherKeyPrefix,
	}, nil
}

// NewRedisWeatherCacheWithClient wraps an existing client. Useful for tests
// or when sharing a client across components.
func NewRedisWeatherCacheWithClient(client *redis.Client, keyPrefix string) *RedisWeatherCache {
	if keyPrefix == "" {
		keyPrefix = weatherKeyPrefix
	}
	return &RedisWeatherCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cached payload for key, or (nil, nil) on a miss.
func (c *RedisWeatherCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read weather cache: %w", err)
	}
	return payload, nil
}

// Set stores payload under key with the given TTL.
func (c *RedisWeatherCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write weather cache: %w", err)
	}
	return nil
}

// Close closes the Redis client.
func (c *RedisWeatherCache) Close() error {
	return c.client.Close()
}

// Ensure RedisWeatherCache implements the weather cache port
var _ weather.Cache = (*RedisWeatherCache)(nil)
