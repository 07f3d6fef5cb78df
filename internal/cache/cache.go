// Package cache provides the gateway's TTL response cache. Two backends
// exist behind one interface: an in-process store and a Redis store for
// deployments running more than one gateway replica.
package cache

import (
	"context"
	"time"
)

// Store is a TTL key-value store for serialized responses. A failed Get is
// a miss, a failed Set is dropped; the cache never fails a request.
type Store interface {
	// Get returns the cached value and whether it was present and fresh
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
