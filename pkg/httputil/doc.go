// Package httputil provides HTTP utilities for repository clients.
//
// # Overview
//
// This package provides infrastructure shared by the remote POM fetcher and
// any other repository-facing client:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/gradletree/)
// with configurable TTL. Repeated extractions of the same build then avoid
// re-downloading POM metadata from the repositories.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, _ := cache.Get("pom:org.slf4j:slf4j-api:2.0.13", &data)
//	if !ok {
//	    data = fetchFromRepository()
//	    cache.Set("pom:org.slf4j:slf4j-api:2.0.13", data)
//	}
//
// Cache keys should be namespaced by concern to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Wrap transient errors with [RetryableError]; anything else fails fast.
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/gradletree/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `gradletree cache clear` or by deleting
// the cache directory.
package httputil
