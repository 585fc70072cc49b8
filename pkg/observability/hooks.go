// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about extraction runs, cache operations, and POM fetches.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExtractionHooks(&myExtractionHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Extraction().OnSnapshotStart(ctx, projectDir)
//	// ... run Gradle ...
//	observability.Extraction().OnSnapshotComplete(ctx, projectDir, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// ExtractionHooks receives events from the extraction pipeline.
type ExtractionHooks interface {
	// Snapshot events cover the Gradle invocation.
	OnSnapshotStart(ctx context.Context, projectDir string)
	OnSnapshotComplete(ctx context.Context, projectDir string, duration time.Duration, err error)

	// Assembly events cover model construction from resolution data.
	OnAssemblyStart(ctx context.Context, project string)
	OnAssemblyComplete(ctx context.Context, project string, nodeCount int, duration time.Duration)

	// POM lookup events.
	OnPomLookup(ctx context.Context, coordinate string, found bool)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// NoopExtractionHooks is a no-op implementation of ExtractionHooks.
type NoopExtractionHooks struct{}

func (NoopExtractionHooks) OnSnapshotStart(context.Context, string) {}
func (NoopExtractionHooks) OnSnapshotComplete(context.Context, string, time.Duration, error) {
}
func (NoopExtractionHooks) OnAssemblyStart(context.Context, string)                          {}
func (NoopExtractionHooks) OnAssemblyComplete(context.Context, string, int, time.Duration)   {}
func (NoopExtractionHooks) OnPomLookup(context.Context, string, bool)                        {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

var (
	extractionHooks ExtractionHooks = NoopExtractionHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	httpHooks       HTTPHooks       = NoopHTTPHooks{}
	hooksMu         sync.RWMutex
)

// SetExtractionHooks registers custom extraction hooks.
// This should be called once at application startup before any extraction runs.
func SetExtractionHooks(h ExtractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		extractionHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Extraction returns the registered extraction hooks.
func Extraction() ExtractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return extractionHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	extractionHooks = NoopExtractionHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
