package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Useful when one cache directory is shared between concerns that must not
// collide, e.g. per-repository POM keys in the HTTP API.
//
// Example usage:
//
//	// Repository-specific keys
//	repoKeyer := NewScopedKeyer(NewDefaultKeyer(), "repo:central:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// PomKey generates a prefixed key for POM document caching.
func (k *ScopedKeyer) PomKey(repoURL, coordinate string) string {
	return k.prefix + k.inner.PomKey(repoURL, coordinate)
}

// ModelKey generates a prefixed key for tree model caching.
func (k *ScopedKeyer) ModelKey(projectDir string, opts ModelKeyOpts) string {
	return k.prefix + k.inner.ModelKey(projectDir, opts)
}
