package extract

import (
	"fmt"
	"strings"

	"github.com/gradletree/gradletree/pkg/gradle"
)

// RepositoryReport is the outcome of classifying a project's declared
// repositories: URLs of the supported ones plus diagnostics for the rest.
type RepositoryReport struct {
	URLs     []string
	Warnings []string
	Errors   []string
}

// ClassifyRepositories sorts repository declarations into supported Maven
// URLs, unsupported kinds (flat directory, Ivy) that warn, and unrecognized
// implementations that error. Unsupported and unrecognized repositories are
// excluded from the URL list.
func ClassifyRepositories(repos []gradle.Repository) RepositoryReport {
	var report RepositoryReport
	for _, repo := range repos {
		switch repo.Kind {
		case gradle.RepoMaven:
			report.URLs = append(report.URLs, repo.URL)
		case gradle.RepoFlatDir:
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Ignoring flat directory repository with directories [%s].",
					strings.Join(repo.Dirs, ", ")))
		case gradle.RepoIvy:
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Ignoring Ivy repository at %s.", repo.URL))
		default:
			report.Errors = append(report.Errors,
				fmt.Sprintf("Unknown repository type: %s", repo.TypeName))
		}
	}
	return report
}
