// Package cache provides artifact caching for rendered graphs.
//
// Rendering a large graph through the Graphviz layout engine can take
// seconds; caching the resulting artifact keyed by the DOT document and
// output format makes repeated renders instant. Backends: a file-based
// cache for CLI use, a Redis cache for server deployments, and a null
// cache for disabling caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was found; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKey builds the cache key for a rendered artifact from the DOT
// document and the output format. Identical DOT text in the same format
// always maps to the same key.
func ArtifactKey(dotSrc []byte, format string) string {
	return "artifact:" + format + ":" + Hash(dotSrc)
}
