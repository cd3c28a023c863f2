// Package interfaces defines the contracts between the core scraping logic
// and its external collaborators (HTTP, cache, logging, rendering).
// All collaborators are injected; nothing in core reaches for globals.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for caching fetched pages and parsed feeds.
// Implementations can be in-memory, Redis or SQLite backed.
type Cache interface {
	// Get retrieves a value by key. Returns an error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
