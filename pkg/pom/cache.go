package pom

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gradletree/gradletree/pkg/gradle"
)

// CacheResolver finds POM files in the local Gradle artifact cache.
//
// Gradle stores downloaded files under
// ~/.gradle/caches/modules-2/files-2.1/<group>/<artifact>/<version>/<sha1>/,
// one hash directory per file. The group keeps its dots; only the file name
// is predictable, so each hash directory is scanned for the .pom.
type CacheResolver struct {
	root string
}

// NewCacheResolver creates a resolver over the artifact cache rooted at
// root. An empty root selects the default ~/.gradle/caches/modules-2/files-2.1.
func NewCacheResolver(root string) (*CacheResolver, error) {
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		root = filepath.Join(home, ".gradle", "caches", "modules-2", "files-2.1")
	}
	return &CacheResolver{root: root}, nil
}

// Root returns the scanned cache directory.
func (r *CacheResolver) Root() string { return r.root }

// ResolvePom scans the module's cache directory for its POM file.
// A module absent from the cache yields an empty result so a later resolver
// in a chain can try; only I/O errors yield a failure.
func (r *CacheResolver) ResolvePom(ctx context.Context, id gradle.ModuleID) gradle.PomResult {
	dir := filepath.Join(r.root, id.Group, id.Artifact, id.Version)

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return gradle.PomResult{Kind: gradle.PomEmpty}
	}
	if err != nil {
		return scanFailure(err)
	}

	pomName := id.Artifact + "-" + id.Version + ".pom"
	for _, hashDir := range entries {
		if !hashDir.IsDir() {
			continue
		}
		path := filepath.Join(dir, hashDir.Name(), pomName)
		if _, err := os.Stat(path); err == nil {
			return gradle.PomResult{Kind: gradle.PomFile, File: path}
		}
	}
	return gradle.PomResult{Kind: gradle.PomEmpty}
}

func scanFailure(err error) gradle.PomResult {
	return gradle.PomResult{
		Kind:    gradle.PomFailure,
		Failure: &gradle.Failure{Kind: "CacheScanFailed", Message: err.Error()},
	}
}
