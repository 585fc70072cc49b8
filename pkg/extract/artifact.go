package extract

import (
	"context"
	"fmt"

	"github.com/gradletree/gradletree/pkg/gradle"
)

// artifactMetadata is the per-node enrichment gathered for a resolved external
// package: variant qualifiers from the artifact set and the POM location from
// the resolver.
type artifactMetadata struct {
	Classifier string
	Extension  string
	PomFile    string
	Error      string
}

// resolveArtifactMetadata performs the two independent metadata lookups for an
// external module: the POM query and the classifier/extension scan over the
// configuration's resolved artifact set. Both are always attempted; when both
// produce errors the POM error comes first and the artifact-set error is
// appended after "; " rather than dropped.
func resolveArtifactMetadata(ctx context.Context, pom gradle.PomResolver, id gradle.ModuleID, artifacts []gradle.ResolvedArtifact) artifactMetadata {
	var meta artifactMetadata

	pomErr := resolvePom(ctx, pom, id, &meta)
	setErr := matchArtifact(id, artifacts, &meta)

	switch {
	case pomErr != "" && setErr != "":
		meta.Error = pomErr + "; " + setErr
	case pomErr != "":
		meta.Error = pomErr
	case setErr != "":
		meta.Error = setErr
	}
	return meta
}

func resolvePom(ctx context.Context, pom gradle.PomResolver, id gradle.ModuleID, meta *artifactMetadata) string {
	if pom == nil {
		return ""
	}
	result := pom.ResolvePom(ctx, id)
	switch result.Kind {
	case gradle.PomFile:
		meta.PomFile = result.File
		return ""
	case gradle.PomFailure:
		return result.Failure.Format()
	case gradle.PomEmpty:
		return "Resolution did not return any artifacts"
	default:
		return fmt.Sprintf("Unknown artifact resolution result type: %s", result.TypeName)
	}
}

// matchArtifact scans the artifact set for an entry owned by id and copies its
// classifier and extension. Owner representations the extractor does not
// recognize are excluded from matching and reported by type name.
func matchArtifact(id gradle.ModuleID, artifacts []gradle.ResolvedArtifact, meta *artifactMetadata) string {
	var opaqueErr string
	for _, a := range artifacts {
		switch a.Owner.Kind {
		case gradle.OwnerModule:
			if a.Owner.Module == id {
				meta.Classifier = a.Classifier
				meta.Extension = a.Extension
				return opaqueErr
			}
		default:
			opaqueErr = fmt.Sprintf("Unknown artifact owner type: %s", a.Owner.TypeName)
		}
	}
	return opaqueErr
}
