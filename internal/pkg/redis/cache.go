package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"shop/internal/pkg/config"
	"shop/pkg/logger"
	retrierconfig "shop/pkg/retrier"
	"shop/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = time.Second
	maxInterval     = 5 * time.Second
	maxElapsedTime  = 30 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

// Cache is a string cache with keys namespaced by service name.
type Cache struct {
	client      *goredis.Client
	serviceName string
}

// NewCache connects to cfg.Addr and waits until the server answers PING.
func NewCache(ctx context.Context, log logger.Logger, cfg *config.Redis, serviceName string) (*Cache, error) {
	client := goredis.NewClient(&goredis.Options{Addr: cfg.Addr})

	cacheLog := log.With(logger.NewField("redis_addr", cfg.Addr))
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	})

	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		cacheLog.With(logger.NewField("error", err)).Error("redis is not reachable")
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	cacheLog.Info("redis connection established")

	return &Cache{
		client:      client,
		serviceName: serviceName,
	}, nil
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, c.key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(key), value, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) key(key string) string {
	return fmt.Sprintf("%s:%s", c.serviceName, key)
}

// NoopCache always misses. It is used when no Redis address is configured.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (string, bool, error) {
	return "", false, nil
}

func (NoopCache) Set(context.Context, string, string, time.Duration) error {
	return nil
}

func (NoopCache) Delete(context.Context, string) error {
	return nil
}
