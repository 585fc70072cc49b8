package gradle

import "context"

// PomResultKind distinguishes the outcomes of a POM metadata query.
type PomResultKind int

const (
	// PomFile means the POM was resolved to a local file; File is meaningful.
	PomFile PomResultKind = iota
	// PomFailure means the query failed; Failure carries the cause chain.
	PomFailure
	// PomEmpty means the query succeeded but returned no artifacts.
	PomEmpty
	// PomUnknown is any result shape the extractor does not recognize;
	// TypeName carries the implementation type.
	PomUnknown
)

// PomResult is the outcome of resolving a module's POM.
type PomResult struct {
	Kind     PomResultKind
	File     string // absolute path, valid when Kind is PomFile
	Failure  *Failure
	TypeName string
}

// PomResolver queries POM metadata for an external module identifier.
//
// Implementations must capture failures in the returned PomResult rather than
// aborting: a failed lookup degrades a single node, never the extraction.
type PomResolver interface {
	ResolvePom(ctx context.Context, id ModuleID) PomResult
}

// PomResolverFunc adapts a function to the PomResolver interface.
type PomResolverFunc func(ctx context.Context, id ModuleID) PomResult

// ResolvePom calls f.
func (f PomResolverFunc) ResolvePom(ctx context.Context, id ModuleID) PomResult {
	return f(ctx, id)
}
