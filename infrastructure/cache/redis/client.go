// ABOUTME: Redis cache implementation using go-redis with ReJSON document storage
// ABOUTME: Provides distributed caching of JSON payloads with TTL support

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nitishm/go-rejson/v4"
	goredis "github.com/redis/go-redis/v9"

	"newssniff-api/pkg/config"
)

// RedisCache implements the Cache interface using Redis.
// Values are stored as JSON documents via ReJSON; callers cache
// marshaled JSON payloads.
type RedisCache struct {
	client  *goredis.Client
	handler *rejson.Handler
}

// NewRedisCache creates a new Redis cache instance
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClientWithContext(context.Background(), client)

	return &RedisCache{
		client:  client,
		handler: handler,
	}, nil
}

// Get retrieves a JSON value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := c.handler.JSONGet(key, ".")
	if err != nil {
		if err == goredis.Nil {
			return nil, errors.New("key not found")
		}
		return nil, err
	}

	data, ok := res.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected value type for key %s", key)
	}

	return data, nil
}

// Set stores a JSON value in Redis with the given TTL
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !json.Valid(value) {
		return errors.New("value must be valid JSON")
	}

	if _, err := c.handler.JSONSet(key, ".", json.RawMessage(value)); err != nil {
		return err
	}

	if ttl > 0 {
		return c.client.Expire(ctx, key, ttl).Err()
	}

	return nil
}

// Delete removes a key from Redis
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	// Deleting a non-existent key is not an error for our use case
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
