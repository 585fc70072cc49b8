package gradle

// OwnerKind distinguishes the known representations of the module that owns a
// resolved artifact. Different Gradle versions expose the owner through
// structurally different types; each known shape gets its own adapter when the
// snapshot is decoded, and anything else is kept opaque so matching can report
// it instead of silently skipping it.
type OwnerKind int

const (
	// OwnerModule is an owner with group/artifact/version coordinates.
	OwnerModule OwnerKind = iota
	// OwnerOpaque is an owner representation the extractor does not recognize.
	// TypeName carries the implementation type for diagnostics.
	OwnerOpaque
)

// ArtifactOwner is the owning-module identity of a resolved artifact.
type ArtifactOwner struct {
	Kind     OwnerKind
	Module   ModuleID // valid when Kind is OwnerModule
	TypeName string   // valid when Kind is OwnerOpaque
}

// ResolvedArtifact is one entry of a configuration's eagerly resolved
// artifact set. Classifier and Extension default to the empty string when the
// artifact carries neither.
type ResolvedArtifact struct {
	Owner      ArtifactOwner
	Classifier string
	Extension  string
	File       string
}
