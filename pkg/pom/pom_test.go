package pom

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gradletree/gradletree/pkg/gradle"
	"github.com/gradletree/gradletree/pkg/httputil"
)

var testID = gradle.ModuleID{Group: "org.slf4j", Artifact: "slf4j-api", Version: "2.0.13"}

// writeGradleCache lays out a module POM the way Gradle's artifact cache does.
func writeGradleCache(t *testing.T, root string, id gradle.ModuleID) string {
	t.Helper()
	dir := filepath.Join(root, id.Group, id.Artifact, id.Version, "d35953cd")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, id.Artifact+"-"+id.Version+".pom")
	if err := os.WriteFile(path, []byte("<project/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCacheResolverFindsPom(t *testing.T) {
	root := t.TempDir()
	want := writeGradleCache(t, root, testID)

	r, err := NewCacheResolver(root)
	if err != nil {
		t.Fatalf("NewCacheResolver: %v", err)
	}
	res := r.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomFile {
		t.Fatalf("Kind = %v, want PomFile (failure: %s)", res.Kind, res.Failure.Format())
	}
	if res.File != want {
		t.Errorf("File = %q, want %q", res.File, want)
	}
}

func TestCacheResolverMissingModule(t *testing.T) {
	r, err := NewCacheResolver(t.TempDir())
	if err != nil {
		t.Fatalf("NewCacheResolver: %v", err)
	}
	res := r.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomEmpty {
		t.Errorf("Kind = %v, want PomEmpty for uncached module", res.Kind)
	}
}

func TestCacheResolverHashDirWithoutPom(t *testing.T) {
	root := t.TempDir()
	// Jar present, POM not.
	dir := filepath.Join(root, testID.Group, testID.Artifact, testID.Version, "ab12")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "slf4j-api-2.0.13.jar"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, _ := NewCacheResolver(root)
	res := r.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomEmpty {
		t.Errorf("Kind = %v, want PomEmpty when only the jar is cached", res.Kind)
	}
}

func TestRemoteResolverFetchesAndMaterializes(t *testing.T) {
	wantPath := "/org/slf4j/slf4j-api/2.0.13/slf4j-api-2.0.13.pom"
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != wantPath {
			http.NotFound(w, req)
			return
		}
		hits++
		w.Write([]byte("<project/>"))
	}))
	defer srv.Close()

	store := t.TempDir()
	r, err := NewRemoteResolver([]string{srv.URL}, store, RemoteOptions{})
	if err != nil {
		t.Fatalf("NewRemoteResolver: %v", err)
	}

	res := r.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomFile {
		t.Fatalf("Kind = %v, want PomFile (failure: %s)", res.Kind, res.Failure.Format())
	}
	data, err := os.ReadFile(res.File)
	if err != nil || string(data) != "<project/>" {
		t.Errorf("materialized POM = %q, %v", data, err)
	}
	if !strings.HasPrefix(res.File, store) {
		t.Errorf("File = %q, want under store %q", res.File, store)
	}

	// Second lookup is served from the store without another request.
	res = r.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomFile {
		t.Fatalf("second Kind = %v, want PomFile", res.Kind)
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}
}

func TestRemoteResolverNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	r, err := NewRemoteResolver([]string{srv.URL}, t.TempDir(), RemoteOptions{})
	if err != nil {
		t.Fatalf("NewRemoteResolver: %v", err)
	}
	res := r.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomEmpty {
		t.Errorf("Kind = %v, want PomEmpty when every repository answers 404", res.Kind)
	}
}

func TestRemoteResolverRemembersMisses(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits++
		http.NotFound(w, req)
	}))
	defer srv.Close()

	misses, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	r, err := NewRemoteResolver([]string{srv.URL}, t.TempDir(), RemoteOptions{MissCache: misses})
	if err != nil {
		t.Fatalf("NewRemoteResolver: %v", err)
	}

	res := r.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomEmpty {
		t.Fatalf("Kind = %v, want PomEmpty", res.Kind)
	}

	// The 404 is remembered, so the second lookup never reaches the server.
	res = r.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomEmpty {
		t.Fatalf("second Kind = %v, want PomEmpty", res.Kind)
	}
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}
}

func TestRemoteResolverServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	r, err := NewRemoteResolver([]string{srv.URL}, t.TempDir(), RemoteOptions{})
	if err != nil {
		t.Fatalf("NewRemoteResolver: %v", err)
	}
	res := r.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomFailure {
		t.Fatalf("Kind = %v, want PomFailure", res.Kind)
	}
	if got := res.Failure.Format(); !strings.Contains(got, "403") {
		t.Errorf("failure = %q, want status mentioned", got)
	}
}

func TestRemoteResolverNoRepositories(t *testing.T) {
	r, err := NewRemoteResolver(nil, t.TempDir(), RemoteOptions{})
	if err != nil {
		t.Fatalf("NewRemoteResolver: %v", err)
	}
	res := r.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomEmpty {
		t.Errorf("Kind = %v, want PomEmpty with no repositories", res.Kind)
	}
}

func fixedResult(res gradle.PomResult) gradle.PomResolver {
	return gradle.PomResolverFunc(func(context.Context, gradle.ModuleID) gradle.PomResult {
		return res
	})
}

func TestChainFirstFileWins(t *testing.T) {
	c := Chain{
		fixedResult(gradle.PomResult{Kind: gradle.PomEmpty}),
		fixedResult(gradle.PomResult{Kind: gradle.PomFile, File: "/a.pom"}),
		fixedResult(gradle.PomResult{Kind: gradle.PomFile, File: "/b.pom"}),
	}
	res := c.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomFile || res.File != "/a.pom" {
		t.Errorf("result = %+v, want /a.pom", res)
	}
}

func TestChainFailureFallsThrough(t *testing.T) {
	c := Chain{
		fixedResult(gradle.PomResult{Kind: gradle.PomFailure, Failure: &gradle.Failure{Kind: "X", Message: "boom"}}),
		fixedResult(gradle.PomResult{Kind: gradle.PomFile, File: "/a.pom"}),
	}
	res := c.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomFile {
		t.Errorf("Kind = %v, want later resolver to win over earlier failure", res.Kind)
	}
}

func TestChainCollectsFailures(t *testing.T) {
	c := Chain{
		fixedResult(gradle.PomResult{Kind: gradle.PomFailure, Failure: &gradle.Failure{Kind: "A", Message: "first"}}),
		fixedResult(gradle.PomResult{Kind: gradle.PomEmpty}),
		fixedResult(gradle.PomResult{Kind: gradle.PomFailure, Failure: &gradle.Failure{Kind: "B", Message: "second"}}),
	}
	res := c.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomFailure {
		t.Fatalf("Kind = %v, want PomFailure", res.Kind)
	}
	want := "A: first\nCaused by: B: second"
	if got := res.Failure.Format(); got != want {
		t.Errorf("failure chain = %q, want %q", got, want)
	}
}

func TestChainAllEmpty(t *testing.T) {
	c := Chain{
		fixedResult(gradle.PomResult{Kind: gradle.PomEmpty}),
		fixedResult(gradle.PomResult{Kind: gradle.PomEmpty}),
	}
	res := c.ResolvePom(context.Background(), testID)
	if res.Kind != gradle.PomEmpty {
		t.Errorf("Kind = %v, want PomEmpty", res.Kind)
	}
}
