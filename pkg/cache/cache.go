// Package cache provides a tag-aware key/value cache used for per-user
// read-through caching. Values are stored as JSON.
package cache

import (
	"context"
	"time"
)

// Store is a cache whose entries can be grouped under tags and dropped
// together.
type Store interface {
	// Get decodes the cached value for key into dst. It reports false on a miss.
	Get(ctx context.Context, key string, dst any) (bool, error)
	// Set stores value under key for ttl and attaches it to every tag.
	Set(ctx context.Context, key string, value any, ttl time.Duration, tags ...string) error
	// InvalidateTags removes every key attached to any of the tags.
	InvalidateTags(ctx context.Context, tags ...string) error
}
