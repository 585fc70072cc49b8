package gradle

// RepositoryKind tags a declared repository by implementation family.
type RepositoryKind int

const (
	// RepoMaven is a Maven repository; URL is meaningful.
	RepoMaven RepositoryKind = iota
	// RepoFlatDir is a flat directory repository; Dirs is meaningful.
	// Flat directories carry no remote metadata and are excluded from the
	// model's repository list with a warning.
	RepoFlatDir
	// RepoIvy is an Ivy repository; URL is meaningful. Ivy layouts are not
	// supported and are excluded with a warning.
	RepoIvy
	// RepoOther is any repository implementation the extractor does not
	// recognize; TypeName carries the implementation type.
	RepoOther
)

// Repository is a project-level repository declaration.
type Repository struct {
	Kind     RepositoryKind
	Name     string
	URL      string
	Dirs     []string
	TypeName string
}
