package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const responseCachePrefix = "quickdesk:response:"

// ResponseCache stores rendered GET responses in Redis so repeated list
// and detail reads skip the database. Entries expire via TTL and are
// invalidated eagerly when a write touches the cached resource.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ResponseCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached payload for the key, or (nil, false) on a miss.
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, responseCachePrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the payload under the key. A non-positive ttl falls back to
// the cache's default.
func (c *ResponseCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}
	if err := c.client.Set(ctx, responseCachePrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache response: %w", err)
	}
	return nil
}

// InvalidateBySubstring deletes every cached response whose key contains
// the substring. Uses SCAN to avoid blocking Redis on large keyspaces.
func (c *ResponseCache) InvalidateBySubstring(ctx context.Context, substring string) error {
	pattern := responseCachePrefix + "*" + substring + "*"

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to invalidate cached response %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached responses: %w", err)
	}
	return nil
}

// Flush removes all cached responses.
func (c *ResponseCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, responseCachePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to flush cached response %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached responses: %w", err)
	}
	return nil
}
