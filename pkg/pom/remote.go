package pom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gradletree/gradletree/pkg/cache"
	"github.com/gradletree/gradletree/pkg/gradle"
	"github.com/gradletree/gradletree/pkg/httputil"
	"github.com/gradletree/gradletree/pkg/observability"
)

// RemoteResolver downloads POM files from Maven repositories.
//
// Fetched documents are materialized under a store directory (the boundary
// reports POM locations as local file paths) and additionally kept in a
// byte cache so repeated extractions skip the network entirely.
type RemoteResolver struct {
	repos  []string
	store  string
	client *http.Client
	cache  cache.Cache
	misses *httputil.Cache
	keyer  cache.Keyer
	ttl    time.Duration
	logger func(string, ...any)
}

/// RemoteOptions configures a RemoteResolver. Zero values select defaults:
// http.DefaultClient, a NullCache, the standard keyer, 24h TTL.
type RemoteOptions struct {
	Client *http.Client
	Cache  cache.Cache

	// MissCache remembers repositories that answered 404 for a module, so
	// repeated extractions skip the round trip. Optional.
	MissCache *httputil.Cache

	Keyer  cache.Keyer
	TTL    time.Duration
	Logger func(string, ...any)
}

// NewRemoteResolver creates a resolver over the given repository base URLs,
// storing fetched POMs under storeDir.
func NewRemoteResolver(repoURLs []string, storeDir string, opts RemoteOptions) (*RemoteResolver, error) {
	if storeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		storeDir = filepath.Join(home, ".cache", "gradletree", "poms")
	}
	if err := os.MkdirAll(storeDir, 0o755); err != nil {
		return nil, err
	}

	r := &RemoteResolver{
		repos:  repoURLs,
		store:  storeDir,
		client: opts.Client,
		cache:  opts.Cache,
		misses: opts.MissCache,
		keyer:  opts.Keyer,
		ttl:    opts.TTL,
		logger: opts.Logger,
	}
	if r.client == nil {
		r.client = http.DefaultClient
	}
	if r.cache == nil {
		r.cache = cache.NewNullCache()
	}
	if r.keyer == nil {
		r.keyer = cache.NewDefaultKeyer()
	}
	if r.ttl == 0 {
		r.ttl = 24 * time.Hour
	}
	if r.logger == nil {
		r.logger = func(string, ...any) {}
	}
	return r, nil
}

// ResolvePom fetches the module's POM from the first repository that has it.
//
// Repositories answering 404 are skipped silently; transport and server
// errors are collected into one failure chain returned only when no
// repository succeeded. With no repositories configured the result is empty.
func (r *RemoteResolver) ResolvePom(ctx context.Context, id gradle.ModuleID) gradle.PomResult {
	if path := r.storePath(id); fileExists(path) {
		observability.Extraction().OnPomLookup(ctx, id.String(), true)
		return gradle.PomResult{Kind: gradle.PomFile, File: path}
	}

	var failures []*gradle.Failure
	for _, repo := range r.repos {
		data, found, err := r.fetch(ctx, repo, id)
		if err != nil {
			r.logger("pom fetch from %s failed for %s: %v", repo, id, err)
			failures = append(failures, &gradle.Failure{
				Kind:    "PomFetchFailed",
				Message: fmt.Sprintf("%s: %v", repo, err),
			})
			continue
		}
		if !found {
			continue
		}
		path, err := r.materialize(id, data)
		if err != nil {
			failures = append(failures, &gradle.Failure{Kind: "PomStoreFailed", Message: err.Error()})
			continue
		}
		observability.Extraction().OnPomLookup(ctx, id.String(), true)
		return gradle.PomResult{Kind: gradle.PomFile, File: path}
	}

	observability.Extraction().OnPomLookup(ctx, id.String(), false)
	if chain := chainFailures(failures); chain != nil {
		return gradle.PomResult{Kind: gradle.PomFailure, Failure: chain}
	}
	return gradle.PomResult{Kind: gradle.PomEmpty}
}

// fetch retrieves the POM bytes from one repository. found is false when the
// repository does not host the module.
func (r *RemoteResolver) fetch(ctx context.Context, repo string, id gradle.ModuleID) (data []byte, found bool, err error) {
	key := r.keyer.PomKey(repo, id.String())
	if cached, hit, cerr := r.cache.Get(ctx, key); cerr == nil && hit {
		observability.Cache().OnCacheHit(ctx, "pom")
		return cached, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "pom")
	if r.knownMiss(key) {
		return nil, false, nil
	}

	url := pomURL(repo, id)
	err = httputil.RetryWithBackoff(ctx, func() error {
		req, rerr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if rerr != nil {
			return rerr
		}
		start := time.Now()
		observability.HTTP().OnRequest(ctx, http.MethodGet, req.URL.Host, req.URL.Path)
		resp, rerr := r.client.Do(req)
		if rerr != nil {
			observability.HTTP().OnError(ctx, http.MethodGet, req.URL.Host, req.URL.Path, rerr)
			return &httputil.RetryableError{Err: rerr}
		}
		observability.HTTP().OnResponse(ctx, http.MethodGet, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			data, rerr = io.ReadAll(resp.Body)
			return rerr
		case resp.StatusCode == http.StatusNotFound:
			return nil
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return &httputil.RetryableError{Err: fmt.Errorf("status %d from %s", resp.StatusCode, url)}
		default:
			return fmt.Errorf("status %d from %s", resp.StatusCode, url)
		}
	})
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		r.recordMiss(key)
		return nil, false, nil
	}

	if cerr := r.cache.Set(ctx, key, data, r.ttl); cerr != nil {
		r.logger("pom cache write failed for %s: %v", id, cerr)
	} else {
		observability.Cache().OnCacheSet(ctx, "pom", len(data))
	}
	return data, true, nil
}

// knownMiss reports whether the repository previously answered 404 for this
// key within the miss cache's TTL.
func (r *RemoteResolver) knownMiss(key string) bool {
	if r.misses == nil {
		return false
	}
	var miss bool
	found, err := r.misses.Get(key, &miss)
	return err == nil && found && miss
}

func (r *RemoteResolver) recordMiss(key string) {
	if r.misses == nil {
		return
	}
	if err := r.misses.Set(key, true); err != nil {
		r.logger("miss cache write failed: %v", err)
	}
}

func (r *RemoteResolver) materialize(id gradle.ModuleID, data []byte) (string, error) {
	path := r.storePath(id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (r *RemoteResolver) storePath(id gradle.ModuleID) string {
	return filepath.Join(r.store, id.Group, id.Artifact, id.Version,
		id.Artifact+"-"+id.Version+".pom")
}

// pomURL builds the Maven repository layout path for a module's POM.
func pomURL(repo string, id gradle.ModuleID) string {
	groupPath := strings.ReplaceAll(id.Group, ".", "/")
	return fmt.Sprintf("%s/%s/%s/%s/%s-%s.pom",
		strings.TrimRight(repo, "/"), groupPath, id.Artifact, id.Version, id.Artifact, id.Version)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// chainFailures links failures into one cause chain, first failure on top.
func chainFailures(failures []*gradle.Failure) *gradle.Failure {
	var chain *gradle.Failure
	for i := len(failures) - 1; i >= 0; i-- {
		f := failures[i]
		f.Cause = chain
		chain = f
	}
	return chain
}
