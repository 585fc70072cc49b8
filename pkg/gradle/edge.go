package gradle

// EdgeKind distinguishes the known outcomes of a dependency edge in a
// resolution result.
type EdgeKind int

const (
	// EdgeResolved means Gradle selected a component for the edge.
	// Selected and Children are meaningful.
	EdgeResolved EdgeKind = iota
	// EdgeUnresolved means Gradle could not select a candidate.
	// Attempted and Failure are meaningful; Children are not explored.
	EdgeUnresolved
	// EdgeUnknown is any result implementation the extractor does not
	// recognize. TypeName carries the implementation type.
	EdgeUnknown
)

// DependencyEdge is one requested/selected edge of a resolution result graph.
type DependencyEdge struct {
	Kind EdgeKind

	// Requested is the display name of the requested dependency. It is present
	// for every edge kind and is the identity used for cycle suppression.
	Requested string

	// Selected is the chosen component when Kind is EdgeResolved.
	Selected ComponentID
	// Children are the edge's own nested dependency edges when Kind is
	// EdgeResolved, in resolution order.
	Children []DependencyEdge

	// Attempted is the display name of the attempted selector when Kind is
	// EdgeUnresolved.
	Attempted string
	// Failure is the resolution failure when Kind is EdgeUnresolved.
	Failure *Failure

	// TypeName names the unrecognized result implementation when Kind is
	// EdgeUnknown.
	TypeName string
}
