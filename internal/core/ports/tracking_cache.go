package ports

import (
	"context"
)

// TrackingCache caches the public tracking projection keyed by tracking
// identifier. Misses and cache errors both fall through to the database, so
// implementations may fail without affecting correctness.
type TrackingCache interface {
	// Get returns the cached projection, or ok=false on a miss.
	Get(ctx context.Context, trackingID string) (payload []byte, ok bool, err error)

	// Set stores the projection until the cache TTL expires.
	Set(ctx context.Context, trackingID string, payload []byte) error

	// Invalidate drops the cached projection after a lifecycle change.
	Invalidate(ctx context.Context, trackingID string) error
}
