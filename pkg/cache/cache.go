// Package cache provides pluggable byte caching for extraction results and
// downloaded repository metadata.
//
// The [Cache] interface abstracts the storage backend; [FileCache] is the
// CLI's on-disk implementation and [NullCache] disables caching entirely.
// [Keyer] centralizes cache key construction so the POM fetcher and the HTTP
// API derive identical keys for identical inputs.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs under string keys with per-entry TTL.
// A TTL of 0 means the entry never expires.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss; expired
	// entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}

// Keyer generates cache keys for the cacheable stages of an extraction.
type Keyer interface {
	// HTTPKey generates a key for a raw HTTP response.
	HTTPKey(namespace, key string) string

	// PomKey generates a key for a POM document fetched from a repository.
	PomKey(repoURL, coordinate string) string

	// ModelKey generates a key for an assembled tree model of a project.
	ModelKey(projectDir string, opts ModelKeyOpts) string
}

// ModelKeyOpts are the inputs that change an extraction result for the same
// project directory. They are hashed into the model key.
type ModelKeyOpts struct {
	Configurations []string `json:"configurations"`
	Offline        bool     `json:"offline"`
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// PomKey generates a key for POM document caching.
func (k *DefaultKeyer) PomKey(repoURL, coordinate string) string {
	return hashKey("pom", repoURL, coordinate)
}

// ModelKey generates a key for tree model caching.
func (k *DefaultKeyer) ModelKey(projectDir string, opts ModelKeyOpts) string {
	return hashKey("model", projectDir, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
