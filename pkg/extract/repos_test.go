package extract

import (
	"strings"
	"testing"

	"github.com/gradletree/gradletree/pkg/gradle"
)

func TestClassifyRepositories(t *testing.T) {
	repos := []gradle.Repository{
		{Kind: gradle.RepoMaven, Name: "MavenRepo", URL: "https://repo.maven.apache.org/maven2/"},
		{Kind: gradle.RepoFlatDir, Dirs: []string{"/work/libs", "/work/vendor"}},
		{Kind: gradle.RepoMaven, Name: "Central", URL: "https://repo1.maven.org/maven2/"},
		{Kind: gradle.RepoIvy, URL: "https://ivy.example.com/"},
		{Kind: gradle.RepoOther, TypeName: "org.example.CustomRepository"},
	}

	report := ClassifyRepositories(repos)

	wantURLs := []string{
		"https://repo.maven.apache.org/maven2/",
		"https://repo1.maven.org/maven2/",
	}
	if len(report.URLs) != len(wantURLs) {
		t.Fatalf("urls = %v, want %v", report.URLs, wantURLs)
	}
	for i, u := range wantURLs {
		if report.URLs[i] != u {
			t.Errorf("urls[%d] = %q, want %q", i, report.URLs[i], u)
		}
	}

	if len(report.Warnings) != 2 {
		t.Fatalf("warnings = %v, want 2 entries", report.Warnings)
	}
	if !strings.Contains(report.Warnings[0], "/work/libs") || !strings.Contains(report.Warnings[0], "/work/vendor") {
		t.Errorf("flat dir warning %q does not name directories", report.Warnings[0])
	}
	if !strings.Contains(report.Warnings[1], "https://ivy.example.com/") {
		t.Errorf("ivy warning %q does not name URL", report.Warnings[1])
	}

	if len(report.Errors) != 1 {
		t.Fatalf("errors = %v, want 1 entry", report.Errors)
	}
	if want := "Unknown repository type: org.example.CustomRepository"; report.Errors[0] != want {
		t.Errorf("error = %q, want %q", report.Errors[0], want)
	}
}

func TestClassifyRepositoriesEmpty(t *testing.T) {
	report := ClassifyRepositories(nil)
	if len(report.URLs) != 0 || len(report.Warnings) != 0 || len(report.Errors) != 0 {
		t.Errorf("ClassifyRepositories(nil) = %+v, want empty report", report)
	}
}
