package extract

import (
	"context"
	"fmt"

	"github.com/gradletree/gradletree/pkg/gradle"
	"github.com/gradletree/gradletree/pkg/model"
)

// Options configures an extraction run.
type Options struct {
	// Include filters configurations by name; nil keeps all resolvable ones.
	Include func(name string) bool
	// Logger receives progress and degradation notes (optional).
	Logger func(string, ...any)
}

// WithDefaults returns a copy of Options with zero values replaced.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Extractor assembles a [model.TreeModel] from a project's resolution data.
// Collaborators are passed in explicitly; there is no framework wiring.
type Extractor struct {
	project *gradle.Project
	pom     gradle.PomResolver
	opts    Options
}

// New creates an Extractor for the given project. pom may be nil, in which
// case nodes carry no POM locations.
func New(project *gradle.Project, pom gradle.PomResolver, opts Options) *Extractor {
	return &Extractor{project: project, pom: pom, opts: opts.WithDefaults()}
}

// BuildModel runs the extraction and returns the assembled model.
//
// The only fatal condition is a Gradle version below [gradle.MinVersion],
// which yields a degenerate model carrying the project's coordinates and a
// single error. Every other failure is captured as data on the affected node
// or in the model's diagnostic lists.
func (e *Extractor) BuildModel(ctx context.Context) *model.TreeModel {
	p := e.project

	m := &model.TreeModel{
		Group:          p.Group,
		Name:           p.Name,
		Version:        normalizeVersion(p.Version),
		Configurations: []model.Configuration{},
		Repositories:   []string{},
		Errors:         []string{},
		Warnings:       []string{},
	}

	if !gradle.SupportedVersion(p.GradleVersion) {
		m.Errors = append(m.Errors, fmt.Sprintf(
			"This project uses the unsupported build system version Gradle %s. At least version %s is required.",
			p.GradleVersion, gradle.MinVersion))
		return m
	}

	m.Configurations = e.walkConfigurations(ctx)

	repos := ClassifyRepositories(p.Repositories)
	if repos.URLs != nil {
		m.Repositories = repos.URLs
	}

	errors := repos.Errors
	warnings := repos.Warnings
	for _, cfg := range m.Configurations {
		for i := range cfg.Dependencies {
			errors, warnings = collectDiagnostics(&cfg.Dependencies[i], errors, warnings)
		}
	}
	m.Errors = dedup(errors)
	m.Warnings = dedup(warnings)

	return m
}

// collectDiagnostics gathers node-level errors and warnings bottom-up.
func collectDiagnostics(d *model.Dependency, errors, warnings []string) ([]string, []string) {
	if d.Error != "" {
		errors = append(errors, d.Error)
	}
	if d.Warning != "" {
		warnings = append(warnings, d.Warning)
	}
	for i := range d.Dependencies {
		errors, warnings = collectDiagnostics(&d.Dependencies[i], errors, warnings)
	}
	return errors, warnings
}

// dedup removes duplicate entries preserving first-seen order.
// It always returns a non-nil slice so the model serializes empty lists.
func dedup(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// normalizeVersion maps Gradle's "unspecified" sentinel to the empty string.
func normalizeVersion(v string) string {
	if v == gradle.UnspecifiedVersion {
		return ""
	}
	return v
}
