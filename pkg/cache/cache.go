// Package cache provides pluggable storage for memoizing seeded fixture
// generation. Regenerating a fixture from the same spec and seed is a pure
// function, so its output can be keyed by a hash of the parameters and
// served from cache instead of being recomputed.
//
// Backends: [FileCache] (default, XDG cache directory), [RedisCache],
// [MongoCache], and [NullCache] (caching disabled). Unseeded generation is
// never cached; its output is random by design.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// errors are reserved for backend failures. A zero ttl on Set stores the
// entry without expiration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
