package gradle

// UnspecifiedVersion is Gradle's sentinel for a project without an explicit
// version declaration. The extractor maps it to the empty string.
const UnspecifiedVersion = "unspecified"

// Configuration is one named dependency configuration of a project, together
// with the resolution data Gradle produced for it.
type Configuration struct {
	Name string

	// CanBeResolved mirrors Gradle's resolvability flag. It is nil when the
	// host version predates the flag, in which case the configuration is
	// assumed resolvable.
	CanBeResolved *bool

	// Roots are the root edges of the configuration's resolution result,
	// in declaration order.
	Roots []DependencyEdge

	// Artifacts is the best-effort eagerly resolved artifact set. It may be
	// empty when resolution of the set failed; ArtifactsError then carries the
	// failure. An empty set only disables classifier/extension enrichment, it
	// never fails the configuration.
	Artifacts      []ResolvedArtifact
	ArtifactsError *Failure
}

// Resolvable reports whether the configuration should be walked.
// Old Gradle versions that do not expose the flag default to resolvable.
func (c *Configuration) Resolvable() bool {
	return c.CanBeResolved == nil || *c.CanBeResolved
}

// SubProject holds the declared coordinates and root directory of a
// sub-project, addressable by its project path.
type SubProject struct {
	Group   string `json:"group"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Dir     string `json:"projectDir"`
}

// Project is the extraction root: the analyzed project's own coordinates plus
// everything Gradle resolved for it.
type Project struct {
	Group   string
	Name    string
	Version string // may be UnspecifiedVersion
	Path    string // project path, ":" for the root project
	Dir     string // absolute project root directory

	// GradleVersion is the host's own version string, e.g. "8.5".
	GradleVersion string

	Configurations []Configuration
	Repositories   []Repository

	// Projects indexes all sub-projects of the build by project path, used to
	// resolve workspace dependency edges.
	Projects map[string]*SubProject
}

// SubProjectByPath looks up a sub-project by its project path.
func (p *Project) SubProjectByPath(path string) (*SubProject, bool) {
	sp, ok := p.Projects[path]
	return sp, ok
}
