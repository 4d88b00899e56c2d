// Package cache provides the reference data cache backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dicefit-api/internal/config"
	"dicefit-api/internal/core"

	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

const keyPrefix = "dicefit:"

// RedisCache stores JSON encoded values under prefixed keys with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

var _ core.Cache = (*RedisCache)(nil)

func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = keyPrefix + k
	}
	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// NoopCache never hits. It stands in when no Redis is configured.
type NoopCache struct{}

var _ core.Cache = NoopCache{}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, any) error         { return nil }
func (NoopCache) Delete(context.Context, ...string) error        { return nil }

// Connect opens the Redis client with tracing and retries the first ping.
// It returns nil when Redis is not configured or stays unreachable; the
// cache is best effort and the API runs without it.
func Connect(cfg config.Config, logger zerolog.Logger) *redis.Client {
	if !cfg.RedisEnabled() {
		logger.Info().Msg("REDIS_HOST not set, reference data cache disabled")
		return nil
	}

	redisAddr := fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort)
	client := redis.NewClient(&redis.Options{
		Addr:         redisAddr,
		Password:     cfg.RedisPassword,
		DB:           0,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
	client.AddHook(redisotel.NewTracingHook())

	for attempts := 0; attempts < 5; attempts++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err == nil {
			logger.Info().Str("addr", redisAddr).Msg("Redis client initialized")
			return client
		}

		logger.Warn().
			Err(err).
			Int("attempt", attempts+1).
			Msg("Redis connection failed, retrying...")
		time.Sleep(time.Duration(attempts+1) * 2 * time.Second)
	}

	logger.Error().Str("addr", redisAddr).Msg("Redis unreachable, continuing without cache")
	_ = client.Close()
	return nil
}

// New returns a RedisCache over client, or a NoopCache when client is nil.
func New(client *redis.Client, ttl time.Duration) core.Cache {
	if client == nil {
		return NoopCache{}
	}
	return NewRedisCache(client, ttl)
}
