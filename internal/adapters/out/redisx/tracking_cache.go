// Package redisx holds the Redis-backed adapters: the tracking projection
// cache and the pub/sub event backplane. Both are optimizations only; misses
// and Redis outages fall through to the database and the in-process hub.
package redisx

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTrackingTTL bounds staleness for projections that miss an
// invalidation, for example when Redis restarts between a write and a
// lifecycle change.
const DefaultTrackingTTL = 5 * time.Minute

const trackingKeyPrefix = "tracking:"

// TrackingCache caches the public tracking projection in Redis keyed by
// tracking identifier.
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrackingCache creates a tracking cache over the given Redis client.
// A non-positive ttl falls back to DefaultTrackingTTL.
func NewTrackingCache(client *redis.Client, ttl time.Duration) *TrackingCache {
	if ttl <= 0 {
		ttl = DefaultTrackingTTL
	}
	return &TrackingCache{client: client, ttl: ttl}
}

// Get returns the cached projection, or ok=false on a miss.
func (c *TrackingCache) Get(ctx context.Context, trackingID string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, trackingKeyPrefix+trackingID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return payload, true, nil
}

// Set stores the projection until the TTL expires.
func (c *TrackingCache) Set(ctx context.Context, trackingID string, payload []byte) error {
	return c.client.Set(ctx, trackingKeyPrefix+trackingID, payload, c.ttl).Err()
}

// Invalidate drops the cached projection after a lifecycle change.
func (c *TrackingCache) Invalidate(ctx context.Context, trackingID string) error {
	return c.client.Del(ctx, trackingKeyPrefix+trackingID).Err()
}
