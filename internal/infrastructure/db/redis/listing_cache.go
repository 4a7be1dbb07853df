package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	listingKey = "properties:all"
	listingTTL = 30 * time.Second
)

// ListingCache stores the serialised listing collection in Redis under a
// single key with a short TTL. Writers invalidate it on every mutation, so
// the TTL only bounds staleness across processes.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get returns the cached payload, or (nil, nil) on a miss.
func (c *ListingCache) Get(ctx context.Context) ([]byte, error) {
	payload, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing cache get: %w", err)
	}
	return payload, nil
}

// Set stores the payload, replacing any previous value.
func (c *ListingCache) Set(ctx context.Context, payload []byte) error {
	return c.client.Set(ctx, listingKey, payload, listingTTL).Err()
}

// Invalidate drops the cached payload.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listingKey).Err()
}
