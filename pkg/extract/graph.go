package extract

import (
	"context"
	"fmt"
	"slices"

	"github.com/gradletree/gradletree/pkg/gradle"
	"github.com/gradletree/gradletree/pkg/model"
)

// resolveEdge converts one dependency graph edge into a tree node, recursing
// depth-first into the edge's own dependencies.
//
// ancestors is the list of requested identifiers on the current descent path.
// When the edge's requested identifier is already on it, the edge closes a
// cycle and is dropped entirely: the second return value is false and the
// caller excludes the child. The list is copied before each descent so sibling
// branches stay free to revisit the same identifier.
func (e *Extractor) resolveEdge(ctx context.Context, edge gradle.DependencyEdge, artifacts []gradle.ResolvedArtifact, ancestors []string) (model.Dependency, bool) {
	if slices.Contains(ancestors, edge.Requested) {
		e.opts.Logger("dropping cyclic edge %s (path %v)", edge.Requested, ancestors)
		return model.Dependency{}, false
	}

	// Children are resolved before the edge itself is classified, but only
	// edges Gradle actually resolved carry explorable children; unresolved and
	// unrecognized results stay leaves.
	var children []model.Dependency
	if edge.Kind == gradle.EdgeResolved {
		path := append(slices.Clone(ancestors), edge.Requested)
		children = e.resolveEdges(ctx, edge.Children, artifacts, path)
	}

	switch edge.Kind {
	case gradle.EdgeResolved:
		return e.resolvedNode(ctx, edge, artifacts, children), true

	case gradle.EdgeUnresolved:
		node := leafNode(edge.Attempted)
		node.Error = "Unresolved: " + edge.Failure.Format()
		return node, true

	default:
		node := leafNode(edge.Requested)
		node.Error = fmt.Sprintf("Unknown result type: %s", edge.TypeName)
		return node, true
	}
}

// resolveEdges maps a list of edges to nodes, preserving edge order and
// skipping dropped cyclic edges.
func (e *Extractor) resolveEdges(ctx context.Context, edges []gradle.DependencyEdge, artifacts []gradle.ResolvedArtifact, ancestors []string) []model.Dependency {
	nodes := make([]model.Dependency, 0, len(edges))
	for _, edge := range edges {
		if node, ok := e.resolveEdge(ctx, edge, artifacts, ancestors); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// resolvedNode classifies the selected component of a resolved edge.
func (e *Extractor) resolvedNode(ctx context.Context, edge gradle.DependencyEdge, artifacts []gradle.ResolvedArtifact, children []model.Dependency) model.Dependency {
	selected := edge.Selected

	switch selected.Kind {
	case gradle.ComponentModule:
		id := selected.Module
		meta := resolveArtifactMetadata(ctx, e.pom, id, artifacts)
		return model.Dependency{
			GroupID:      id.Group,
			ArtifactID:   id.Artifact,
			Version:      id.Version,
			Classifier:   meta.Classifier,
			Extension:    meta.Extension,
			PomFile:      meta.PomFile,
			Error:        meta.Error,
			Dependencies: children,
		}

	case gradle.ComponentProject:
		node := e.projectNode(selected.ProjectPath)
		node.Dependencies = children
		return node

	default:
		coords := ParseIdentifier(selected.Display)
		return model.Dependency{
			GroupID:      coords.GroupID,
			ArtifactID:   coords.ArtifactID,
			Version:      coords.Version,
			Error:        fmt.Sprintf("Unknown id type: %s", selected.TypeName),
			Dependencies: children,
		}
	}
}

// projectNode builds a node for a workspace dependency from the target
// sub-project's own declared coordinates.
func (e *Extractor) projectNode(path string) model.Dependency {
	sp, ok := e.project.SubProjectByPath(path)
	if !ok {
		node := leafNode("project " + path)
		node.Error = fmt.Sprintf("Could not find project with path %q in the build.", path)
		return node
	}
	return model.Dependency{
		GroupID:    sp.Group,
		ArtifactID: sp.Name,
		Version:    normalizeVersion(sp.Version),
		LocalPath:  sp.Dir,
	}
}

// leafNode builds an error leaf from a display name alone.
func leafNode(displayName string) model.Dependency {
	coords := ParseIdentifier(displayName)
	return model.Dependency{
		GroupID:      coords.GroupID,
		ArtifactID:   coords.ArtifactID,
		Version:      coords.Version,
		Dependencies: []model.Dependency{},
	}
}
