// Package cache provides pluggable byte caches for HTTP responses and
// fetched distribution data.
//
// Backends:
//   - FileCache: on-disk entries for CLI usage (default)
//   - RedisCache: shared cache for multi-instance deployments
//   - NullCache: no-op cache for tests or --no-cache runs
//
// Keys are arbitrary strings; backends hash them where filesystem or
// protocol restrictions apply. Entries carry a TTL; a TTL of zero means
// the entry never expires.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
