package extract

import (
	"context"

	"github.com/gradletree/gradletree/pkg/model"
)

// walkConfigurations iterates the project's configurations, skipping
// non-resolvable ones, and resolves each root edge of the rest.
//
// Skips and artifact set failures are logged only; they never become model
// diagnostics. A missing artifact set just means classifier/extension
// enrichment is unavailable for that configuration's nodes.
func (e *Extractor) walkConfigurations(ctx context.Context) []model.Configuration {
	configs := make([]model.Configuration, 0, len(e.project.Configurations))

	for i := range e.project.Configurations {
		cfg := &e.project.Configurations[i]

		if !cfg.Resolvable() {
			e.opts.Logger("skipping configuration %s: not resolvable", cfg.Name)
			continue
		}
		if e.opts.Include != nil && !e.opts.Include(cfg.Name) {
			e.opts.Logger("skipping configuration %s: excluded by filter", cfg.Name)
			continue
		}

		artifacts := cfg.Artifacts
		if cfg.ArtifactsError != nil {
			e.opts.Logger("could not resolve artifacts for configuration %s: %s",
				cfg.Name, cfg.ArtifactsError.Format())
			artifacts = nil
		}

		configs = append(configs, model.Configuration{
			Name:         cfg.Name,
			Dependencies: e.resolveEdges(ctx, cfg.Roots, artifacts, nil),
		})
	}

	return configs
}
