package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gradletree/gradletree/pkg/gradle"
)

// Wire format of the snapshot document. Variant types are tagged with a
// "type" field: the known tags below map onto the boundary kinds, any other
// tag is preserved verbatim as the unknown variant's type name.
const (
	tagResolved   = "resolved"
	tagUnresolved = "unresolved"
	tagModule     = "module"
	tagProject    = "project"
	tagMaven      = "maven"
	tagFlatDir    = "flatDir"
	tagIvy        = "ivy"
)

type document struct {
	GradleVersion  string                        `json:"gradleVersion"`
	Project        projectDoc                    `json:"project"`
	Projects       map[string]*gradle.SubProject `json:"projects"`
	Repositories   []repositoryDoc               `json:"repositories"`
	Configurations []configurationDoc            `json:"configurations"`
}

type projectDoc struct {
	Group   string `json:"group"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Path    string `json:"path"`
	Dir     string `json:"projectDir"`
}

type repositoryDoc struct {
	Type string   `json:"type"`
	Name string   `json:"name"`
	URL  string   `json:"url"`
	Dirs []string `json:"dirs"`
}

type configurationDoc struct {
	Name string `json:"name"`

	// CanBeResolved stays nil when the emitting Gradle version predates the
	// flag; the boundary type treats nil as resolvable.
	CanBeResolved *bool `json:"canBeResolved"`

	Dependencies   []edgeDoc       `json:"dependencies"`
	Artifacts      []artifactDoc   `json:"artifacts"`
	ArtifactsError *gradle.Failure `json:"artifactsError"`
}

type edgeDoc struct {
	Type      string          `json:"type"`
	Requested string          `json:"requested"`
	Selected  *identifierDoc  `json:"selected"`
	Children  []edgeDoc       `json:"children"`
	Attempted string          `json:"attempted"`
	Failure   *gradle.Failure `json:"failure"`
}

type identifierDoc struct {
	Type        string `json:"type"`
	Group       string `json:"group"`
	Artifact    string `json:"artifact"`
	Version     string `json:"version"`
	ProjectPath string `json:"projectPath"`
	Display     string `json:"display"`
}

type artifactDoc struct {
	Owner      identifierDoc `json:"owner"`
	Classifier string        `json:"classifier"`
	Extension  string        `json:"extension"`
	File       string        `json:"file"`
}

// Decode parses a snapshot document from r into the boundary representation.
func Decode(r io.Reader) (*gradle.Project, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	p := &gradle.Project{
		Group:         doc.Project.Group,
		Name:          doc.Project.Name,
		Version:       doc.Project.Version,
		Path:          doc.Project.Path,
		Dir:           doc.Project.Dir,
		GradleVersion: doc.GradleVersion,
		Projects:      doc.Projects,
	}
	if p.Projects == nil {
		p.Projects = map[string]*gradle.SubProject{}
	}

	for _, rd := range doc.Repositories {
		p.Repositories = append(p.Repositories, decodeRepository(rd))
	}
	for _, cd := range doc.Configurations {
		p.Configurations = append(p.Configurations, decodeConfiguration(cd))
	}
	return p, nil
}

// Load reads and decodes a snapshot file at path.
func Load(path string) (*gradle.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

func decodeRepository(d repositoryDoc) gradle.Repository {
	repo := gradle.Repository{Name: d.Name, URL: d.URL, Dirs: d.Dirs}
	switch d.Type {
	case tagMaven:
		repo.Kind = gradle.RepoMaven
	case tagFlatDir:
		repo.Kind = gradle.RepoFlatDir
	case tagIvy:
		repo.Kind = gradle.RepoIvy
	default:
		repo.Kind = gradle.RepoOther
		repo.TypeName = d.Type
	}
	return repo
}

func decodeConfiguration(d configurationDoc) gradle.Configuration {
	cfg := gradle.Configuration{
		Name:           d.Name,
		CanBeResolved:  d.CanBeResolved,
		ArtifactsError: d.ArtifactsError,
	}
	for _, ed := range d.Dependencies {
		cfg.Roots = append(cfg.Roots, decodeEdge(ed))
	}
	for _, ad := range d.Artifacts {
		cfg.Artifacts = append(cfg.Artifacts, decodeArtifact(ad))
	}
	return cfg
}

func decodeEdge(d edgeDoc) gradle.DependencyEdge {
	edge := gradle.DependencyEdge{Requested: d.Requested}
	switch d.Type {
	case tagResolved:
		edge.Kind = gradle.EdgeResolved
		if d.Selected != nil {
			edge.Selected = decodeIdentifier(*d.Selected)
		} else {
			edge.Selected = gradle.ComponentID{Kind: gradle.ComponentUnknown}
		}
		for _, cd := range d.Children {
			edge.Children = append(edge.Children, decodeEdge(cd))
		}
	case tagUnresolved:
		edge.Kind = gradle.EdgeUnresolved
		edge.Attempted = d.Attempted
		edge.Failure = d.Failure
	default:
		edge.Kind = gradle.EdgeUnknown
		edge.TypeName = d.Type
	}
	return edge
}

func decodeIdentifier(d identifierDoc) gradle.ComponentID {
	id := gradle.ComponentID{Display: d.Display}
	switch d.Type {
	case tagModule:
		id.Kind = gradle.ComponentModule
		id.Module = gradle.ModuleID{Group: d.Group, Artifact: d.Artifact, Version: d.Version}
	case tagProject:
		id.Kind = gradle.ComponentProject
		id.ProjectPath = d.ProjectPath
	default:
		id.Kind = gradle.ComponentUnknown
		id.TypeName = d.Type
	}
	return id
}

func decodeArtifact(d artifactDoc) gradle.ResolvedArtifact {
	a := gradle.ResolvedArtifact{
		Classifier: d.Classifier,
		Extension:  d.Extension,
		File:       d.File,
	}
	switch d.Owner.Type {
	case tagModule:
		a.Owner = gradle.ArtifactOwner{
			Kind:   gradle.OwnerModule,
			Module: gradle.ModuleID{Group: d.Owner.Group, Artifact: d.Owner.Artifact, Version: d.Owner.Version},
		}
	default:
		a.Owner = gradle.ArtifactOwner{Kind: gradle.OwnerOpaque, TypeName: d.Owner.Type}
	}
	return a
}
