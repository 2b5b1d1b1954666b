// Package observability provides hooks for metrics and tracing.
//
// The package keeps the generator free of hard dependencies on any
// observability backend: hook interfaces have no-op defaults, and main
// registers real implementations at startup if it wants them.
//
//	func main() {
//	    observability.SetGeneratorHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries emit events through the registry:
//
//	observability.Generator().OnGenerateStart(ctx, preset, nodes)
//	// ... generate ...
//	observability.Generator().OnGenerateComplete(ctx, preset, edges, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// GeneratorHooks receives events from fixture generation.
type GeneratorHooks interface {
	// OnGenerateStart records the start of a generation run.
	OnGenerateStart(ctx context.Context, preset string, nodes int)

	// OnGenerateComplete records the end of a generation run with the
	// number of edges produced.
	OnGenerateComplete(ctx context.Context, preset string, edges int, duration time.Duration, err error)

	// OnWrite records a fixture being written to disk.
	OnWrite(ctx context.Context, path string, size int)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, key string, size int)
}

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnGenerateStart(context.Context, string, int) {}
func (NoopGeneratorHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopGeneratorHooks) OnWrite(context.Context, string, int) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	generatorHooks GeneratorHooks = NoopGeneratorHooks{}
	cacheHooks     CacheHooks     = NoopCacheHooks{}
	hooksMu        sync.RWMutex
)

// SetGeneratorHooks registers custom generator hooks.
// Call once at application startup, before any generation.
func SetGeneratorHooks(h GeneratorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generatorHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// Call once at application startup, before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Generator returns the registered generator hooks.
func Generator() GeneratorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generatorHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generatorHooks = NoopGeneratorHooks{}
	cacheHooks = NoopCacheHooks{}
}
