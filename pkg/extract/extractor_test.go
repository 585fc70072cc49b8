package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/gradletree/gradletree/pkg/gradle"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildModelVersionGate(t *testing.T) {
	project := &gradle.Project{
		Group:         "com.example",
		Name:          "app",
		Version:       "1.0",
		GradleVersion: "3.5",
		Configurations: []gradle.Configuration{
			{Name: "compileClasspath", Roots: []gradle.DependencyEdge{moduleEdge("g", "a", "1")}},
		},
		Repositories: []gradle.Repository{
			{Kind: gradle.RepoMaven, URL: "https://repo1.maven.org/maven2/"},
		},
	}

	m := New(project, nil, Options{}).BuildModel(context.Background())

	if m.Group != "com.example" || m.Name != "app" || m.Version != "1.0" {
		t.Errorf("coordinates = %s:%s:%s, want project's own", m.Group, m.Name, m.Version)
	}
	if len(m.Configurations) != 0 {
		t.Errorf("configurations = %d, want 0", len(m.Configurations))
	}
	if len(m.Repositories) != 0 {
		t.Errorf("repositories = %d, want 0", len(m.Repositories))
	}
	if len(m.Warnings) != 0 {
		t.Errorf("warnings = %d, want 0", len(m.Warnings))
	}
	if len(m.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", m.Errors)
	}
	if !strings.Contains(m.Errors[0], "Gradle 3.5") || !strings.Contains(m.Errors[0], gradle.MinVersion) {
		t.Errorf("error %q should name the found and minimum versions", m.Errors[0])
	}
}

func TestBuildModelUnspecifiedVersion(t *testing.T) {
	project := &gradle.Project{Name: "app", Version: "unspecified", GradleVersion: "8.5"}
	m := New(project, nil, Options{}).BuildModel(context.Background())
	if m.Version != "" {
		t.Errorf("version = %q, want empty for unspecified", m.Version)
	}
}

func TestBuildModelDeduplicatesDiagnostics(t *testing.T) {
	unresolved := func() gradle.DependencyEdge {
		return gradle.DependencyEdge{
			Kind:      gradle.EdgeUnresolved,
			Requested: "com.foo:gone:1.0",
			Attempted: "com.foo:gone:1.0",
			Failure:   &gradle.Failure{Kind: "NotFound", Message: "missing"},
		}
	}

	project := &gradle.Project{
		Name:          "app",
		Version:       "1.0",
		GradleVersion: "8.5",
		Configurations: []gradle.Configuration{
			{Name: "compileClasspath", Roots: []gradle.DependencyEdge{
				moduleEdge("g", "a", "1", unresolved()),
				unresolved(),
			}},
			{Name: "runtimeClasspath", Roots: []gradle.DependencyEdge{unresolved()}},
		},
	}

	m := New(project, nil, Options{}).BuildModel(context.Background())

	if len(m.Errors) != 1 {
		t.Fatalf("errors = %v, want the duplicate collapsed to one", m.Errors)
	}
	if want := "Unresolved: NotFound: missing"; m.Errors[0] != want {
		t.Errorf("error = %q, want %q", m.Errors[0], want)
	}

	// The nodes keep their individual annotations.
	if m.Configurations[0].Dependencies[1].Error == "" {
		t.Error("node-level error lost during aggregation")
	}
}

func TestBuildModelRepositoryDiagnostics(t *testing.T) {
	project := &gradle.Project{
		Name:          "app",
		GradleVersion: "8.5",
		Repositories: []gradle.Repository{
			{Kind: gradle.RepoMaven, URL: "https://repo1.maven.org/maven2/"},
			{Kind: gradle.RepoFlatDir, Dirs: []string{"/libs"}},
		},
	}

	m := New(project, nil, Options{}).BuildModel(context.Background())

	if len(m.Repositories) != 1 || m.Repositories[0] != "https://repo1.maven.org/maven2/" {
		t.Errorf("repositories = %v, want maven URL only", m.Repositories)
	}
	if len(m.Warnings) != 1 || !strings.Contains(m.Warnings[0], "/libs") {
		t.Errorf("warnings = %v, want one flat dir warning", m.Warnings)
	}
}

func TestWalkConfigurationsSkipsNonResolvable(t *testing.T) {
	project := &gradle.Project{
		Name:          "app",
		GradleVersion: "8.5",
		Configurations: []gradle.Configuration{
			{Name: "api", CanBeResolved: boolPtr(false), Roots: []gradle.DependencyEdge{moduleEdge("g", "a", "1")}},
			{Name: "compileClasspath", CanBeResolved: boolPtr(true), Roots: []gradle.DependencyEdge{moduleEdge("g", "a", "1")}},
			{Name: "legacy", Roots: []gradle.DependencyEdge{moduleEdge("g", "b", "1")}}, // old Gradle: no flag, assume resolvable
		},
	}

	m := New(project, nil, Options{}).BuildModel(context.Background())

	if len(m.Configurations) != 2 {
		t.Fatalf("configurations = %d, want non-resolvable skipped", len(m.Configurations))
	}
	if m.Configurations[0].Name != "compileClasspath" || m.Configurations[1].Name != "legacy" {
		t.Errorf("configuration order = %s, %s", m.Configurations[0].Name, m.Configurations[1].Name)
	}
	// The skip is informational only.
	if len(m.Errors) != 0 || len(m.Warnings) != 0 {
		t.Errorf("skip produced diagnostics: errors=%v warnings=%v", m.Errors, m.Warnings)
	}
}

func TestWalkConfigurationsArtifactSetFailureDegrades(t *testing.T) {
	project := &gradle.Project{
		Name:          "app",
		GradleVersion: "8.5",
		Configurations: []gradle.Configuration{
			{
				Name:  "compileClasspath",
				Roots: []gradle.DependencyEdge{moduleEdge("com.foo", "bar", "1.0")},
				Artifacts: []gradle.ResolvedArtifact{{
					Owner:     gradle.ArtifactOwner{Kind: gradle.OwnerModule, Module: gradle.ModuleID{Group: "com.foo", Artifact: "bar", Version: "1.0"}},
					Extension: "jar",
				}},
				ArtifactsError: &gradle.Failure{Kind: "ResolveException", Message: "broken"},
			},
		},
	}

	var logged []string
	opts := Options{Logger: func(format string, args ...any) { logged = append(logged, format) }}
	m := New(project, nil, opts).BuildModel(context.Background())

	// Enrichment unavailable, but the configuration still walks.
	node := m.Configurations[0].Dependencies[0]
	if node.Extension != "" {
		t.Errorf("Extension = %q, want empty when the artifact set failed", node.Extension)
	}
	if len(m.Errors) != 0 || len(m.Warnings) != 0 {
		t.Errorf("artifact set failure surfaced as model diagnostics: %v %v", m.Errors, m.Warnings)
	}
	if len(logged) == 0 {
		t.Error("artifact set failure should be logged")
	}
}

func TestWalkConfigurationsIncludeFilter(t *testing.T) {
	project := &gradle.Project{
		Name:          "app",
		GradleVersion: "8.5",
		Configurations: []gradle.Configuration{
			{Name: "compileClasspath"},
			{Name: "testRuntimeClasspath"},
		},
	}

	opts := Options{Include: func(name string) bool { return name == "compileClasspath" }}
	m := New(project, nil, opts).BuildModel(context.Background())
	if len(m.Configurations) != 1 || m.Configurations[0].Name != "compileClasspath" {
		t.Errorf("configurations = %+v, want compileClasspath only", m.Configurations)
	}
}

func TestBuildModelPreservesRootOrder(t *testing.T) {
	project := &gradle.Project{
		Name:          "app",
		GradleVersion: "8.5",
		Configurations: []gradle.Configuration{
			{Name: "compileClasspath", Roots: []gradle.DependencyEdge{
				moduleEdge("g", "z", "1"),
				moduleEdge("g", "a", "1"),
				moduleEdge("g", "m", "1"),
			}},
		},
	}

	m := New(project, nil, Options{}).BuildModel(context.Background())
	got := m.Configurations[0].Dependencies
	want := []string{"z", "a", "m"}
	for i, w := range want {
		if got[i].ArtifactID != w {
			t.Errorf("root[%d] = %s, want %s", i, got[i].ArtifactID, w)
		}
	}
}
