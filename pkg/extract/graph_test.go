package extract

import (
	"context"
	"testing"

	"github.com/gradletree/gradletree/pkg/gradle"
)

func moduleEdge(group, artifact, version string, children ...gradle.DependencyEdge) gradle.DependencyEdge {
	id := gradle.ModuleID{Group: group, Artifact: artifact, Version: version}
	return gradle.DependencyEdge{
		Kind:      gradle.EdgeResolved,
		Requested: id.String(),
		Selected:  gradle.ComponentID{Kind: gradle.ComponentModule, Module: id, Display: id.String()},
		Children:  children,
	}
}

func testExtractor(project *gradle.Project) *Extractor {
	return New(project, nil, Options{})
}

func TestResolveEdgeCycleDropped(t *testing.T) {
	// a -> b -> a closes a cycle; the inner a must be dropped entirely.
	edge := moduleEdge("g", "a", "1",
		moduleEdge("g", "b", "1",
			moduleEdge("g", "a", "1")))

	e := testExtractor(&gradle.Project{})
	node, ok := e.resolveEdge(context.Background(), edge, nil, nil)
	if !ok {
		t.Fatal("root edge unexpectedly dropped")
	}

	if len(node.Dependencies) != 1 {
		t.Fatalf("a has %d children, want 1", len(node.Dependencies))
	}
	b := node.Dependencies[0]
	if b.ArtifactID != "b" {
		t.Fatalf("child = %s, want b", b.ArtifactID)
	}
	if len(b.Dependencies) != 0 {
		t.Errorf("b has %d children, want 0 (cyclic edge dropped, no placeholder)", len(b.Dependencies))
	}
}

func TestResolveEdgeDiamondNotDeduplicated(t *testing.T) {
	// a -> {b -> d, c -> d}: d appears twice, once per branch.
	d := moduleEdge("g", "d", "1")
	edge := moduleEdge("g", "a", "1",
		moduleEdge("g", "b", "1", d),
		moduleEdge("g", "c", "1", d))

	e := testExtractor(&gradle.Project{})
	node, ok := e.resolveEdge(context.Background(), edge, nil, nil)
	if !ok {
		t.Fatal("root edge unexpectedly dropped")
	}

	if len(node.Dependencies) != 2 {
		t.Fatalf("a has %d children, want 2", len(node.Dependencies))
	}
	for _, branch := range node.Dependencies {
		if len(branch.Dependencies) != 1 || branch.Dependencies[0].ArtifactID != "d" {
			t.Errorf("branch %s children = %+v, want single d node", branch.ArtifactID, branch.Dependencies)
		}
	}
}

func TestResolveEdgeSelfCycleAcrossBranches(t *testing.T) {
	// The same identifier may appear on unrelated paths; only an edge whose
	// requested identifier is among its own ancestors closes a cycle.
	x := moduleEdge("g", "x", "1")
	edge := moduleEdge("g", "root", "1",
		moduleEdge("g", "left", "1", x),
		x)

	e := testExtractor(&gradle.Project{})
	node, _ := e.resolveEdge(context.Background(), edge, nil, nil)
	if len(node.Dependencies) != 2 {
		t.Fatalf("root has %d children, want 2", len(node.Dependencies))
	}
}

func TestResolveEdgeUnresolved(t *testing.T) {
	edge := gradle.DependencyEdge{
		Kind:      gradle.EdgeUnresolved,
		Requested: "com.foo:bar:1.+",
		Attempted: "com.foo:bar:1.+",
		Failure: &gradle.Failure{
			Kind:    "ModuleVersionNotFoundException",
			Message: "Could not find any matches for com.foo:bar:1.+",
			Cause:   &gradle.Failure{Kind: "IOException", Message: "offline"},
		},
		// Unresolved edges never expose children; any explored edges are discarded.
		Children: []gradle.DependencyEdge{moduleEdge("g", "ghost", "1")},
	}

	e := testExtractor(&gradle.Project{})
	node, ok := e.resolveEdge(context.Background(), edge, nil, nil)
	if !ok {
		t.Fatal("unresolved edge dropped, want error leaf")
	}

	want := "Unresolved: ModuleVersionNotFoundException: Could not find any matches for com.foo:bar:1.+" +
		"\nCaused by: IOException: offline"
	if node.Error != want {
		t.Errorf("Error = %q, want %q", node.Error, want)
	}
	if len(node.Dependencies) != 0 {
		t.Errorf("unresolved leaf has %d children, want 0", len(node.Dependencies))
	}
	if node.GroupID != "com.foo" || node.ArtifactID != "bar" || node.Version != "1.+" {
		t.Errorf("coordinates = %s:%s:%s, want com.foo:bar:1.+", node.GroupID, node.ArtifactID, node.Version)
	}
	if node.PomFile != "" || node.LocalPath != "" {
		t.Error("error leaf must carry neither pomFile nor localPath")
	}
}

func TestResolveEdgeUnknownResultType(t *testing.T) {
	edge := gradle.DependencyEdge{
		Kind:      gradle.EdgeUnknown,
		Requested: "strange thing",
		TypeName:  "org.example.OddDependencyResult",
	}

	e := testExtractor(&gradle.Project{})
	node, _ := e.resolveEdge(context.Background(), edge, nil, nil)
	if want := "Unknown result type: org.example.OddDependencyResult"; node.Error != want {
		t.Errorf("Error = %q, want %q", node.Error, want)
	}
	if node.GroupID != "<unknown>" || node.ArtifactID != "strange thing" {
		t.Errorf("coordinates = %s:%s, want parsed fallback", node.GroupID, node.ArtifactID)
	}
}

func TestResolveEdgeUnknownIDType(t *testing.T) {
	edge := gradle.DependencyEdge{
		Kind:      gradle.EdgeResolved,
		Requested: "com.foo:bar:1.0",
		Selected: gradle.ComponentID{
			Kind:     gradle.ComponentUnknown,
			TypeName: "org.example.OddComponentIdentifier",
			Display:  "com.foo:bar:1.0",
		},
	}

	e := testExtractor(&gradle.Project{})
	node, _ := e.resolveEdge(context.Background(), edge, nil, nil)
	if want := "Unknown id type: org.example.OddComponentIdentifier"; node.Error != want {
		t.Errorf("Error = %q, want %q", node.Error, want)
	}
	if node.GroupID != "com.foo" || node.ArtifactID != "bar" || node.Version != "1.0" {
		t.Errorf("coordinates = %s:%s:%s, want parsed from display name", node.GroupID, node.ArtifactID, node.Version)
	}
}

func TestResolveEdgeProject(t *testing.T) {
	project := &gradle.Project{
		Projects: map[string]*gradle.SubProject{
			":lib": {Group: "com.example", Name: "lib", Version: "2.0", Dir: "/work/lib"},
		},
	}
	edge := gradle.DependencyEdge{
		Kind:      gradle.EdgeResolved,
		Requested: "project :lib",
		Selected:  gradle.ComponentID{Kind: gradle.ComponentProject, ProjectPath: ":lib", Display: "project :lib"},
	}

	e := testExtractor(project)
	node, _ := e.resolveEdge(context.Background(), edge, nil, nil)

	if node.GroupID != "com.example" || node.ArtifactID != "lib" || node.Version != "2.0" {
		t.Errorf("coordinates = %s:%s:%s, want com.example:lib:2.0", node.GroupID, node.ArtifactID, node.Version)
	}
	if node.LocalPath != "/work/lib" {
		t.Errorf("LocalPath = %q, want /work/lib", node.LocalPath)
	}
	if node.PomFile != "" || node.Classifier != "" || node.Extension != "" {
		t.Error("workspace node must carry no pomFile/classifier/extension")
	}
}

func TestResolveEdgeProjectMissing(t *testing.T) {
	edge := gradle.DependencyEdge{
		Kind:      gradle.EdgeResolved,
		Requested: "project :gone",
		Selected:  gradle.ComponentID{Kind: gradle.ComponentProject, ProjectPath: ":gone", Display: "project :gone"},
	}

	e := testExtractor(&gradle.Project{})
	node, _ := e.resolveEdge(context.Background(), edge, nil, nil)
	if node.Error == "" {
		t.Error("missing sub-project should produce an error leaf")
	}
	if node.LocalPath != "" {
		t.Errorf("LocalPath = %q, want empty on error leaf", node.LocalPath)
	}
}
