package cache

import (
	"context"
	"time"
)

// Cache is the read-through response cache contract. Implementations are
// expected to JSON-encode values so that a stored entry round-trips into
// any destination with the same shape.
type Cache interface {
	// Get loads the entry under key into dest.
	// found=false means a miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
