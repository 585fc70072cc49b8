package gradle

import "fmt"

// ComponentKind distinguishes the known shapes of a selected component
// identifier. Gradle exposes these as an open class hierarchy; extraction
// handles each known kind explicitly and reports anything else by type name.
type ComponentKind int

const (
	// ComponentModule identifies an external module with group/artifact/version
	// coordinates.
	ComponentModule ComponentKind = iota
	// ComponentProject identifies a sub-project of the same build, addressed by
	// its project path (e.g. ":lib:core").
	ComponentProject
	// ComponentUnknown is any identifier implementation the extractor does not
	// recognize. TypeName carries the implementation type for diagnostics.
	ComponentUnknown
)

// ModuleID is the coordinate triple of an external module.
type ModuleID struct {
	Group    string `json:"group"`
	Artifact string `json:"artifact"`
	Version  string `json:"version"`
}

// String returns the "group:artifact:version" form.
func (m ModuleID) String() string {
	return fmt.Sprintf("%s:%s:%s", m.Group, m.Artifact, m.Version)
}

// ComponentID is the resolved identity of a dependency edge.
// Exactly one of the kind-specific fields is meaningful, selected by Kind.
type ComponentID struct {
	Kind ComponentKind

	// Module holds the coordinates when Kind is ComponentModule.
	Module ModuleID
	// ProjectPath holds the sub-project path when Kind is ComponentProject.
	ProjectPath string
	// TypeName names the unrecognized implementation when Kind is ComponentUnknown.
	TypeName string
	// Display is the identifier's display name as Gradle renders it.
	Display string
}
