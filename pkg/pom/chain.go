package pom

import (
	"context"

	"github.com/gradletree/gradletree/pkg/gradle"
)

// Chain tries resolvers in order and returns the first located POM.
//
// Empty results fall through to the next resolver. Failures are remembered
// but also fall through, so a later resolver can still succeed; when nothing
// succeeds the failures are returned as one cause chain, or an empty result
// when every resolver came up empty.
type Chain []gradle.PomResolver

// ResolvePom implements the boundary resolver interface.
func (c Chain) ResolvePom(ctx context.Context, id gradle.ModuleID) gradle.PomResult {
	var failures []*gradle.Failure
	for _, r := range c {
		res := r.ResolvePom(ctx, id)
		switch res.Kind {
		case gradle.PomFile:
			return res
		case gradle.PomFailure:
			if res.Failure != nil {
				failures = append(failures, res.Failure)
			}
		}
	}
	if chain := chainFailures(failures); chain != nil {
		return gradle.PomResult{Kind: gradle.PomFailure, Failure: chain}
	}
	return gradle.PomResult{Kind: gradle.PomEmpty}
}
