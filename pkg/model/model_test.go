package model

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func sampleModel() *TreeModel {
	return &TreeModel{
		Group:   "com.example",
		Name:    "app",
		Version: "1.2.3",
		Configurations: []Configuration{
			{
				Name: "compileClasspath",
				Dependencies: []Dependency{
					{
						GroupID:    "org.slf4j",
						ArtifactID: "slf4j-api",
						Version:    "2.0.13",
						Extension:  "jar",
						PomFile:    "/home/u/.gradle/caches/.../slf4j-api-2.0.13.pom",
						Dependencies: []Dependency{
							{
								GroupID:      "com.foo",
								ArtifactID:   "gone",
								Version:      "1.0",
								Error:        "Unresolved: NotFound: missing",
								Dependencies: []Dependency{},
							},
						},
					},
					{
						GroupID:      "<project>",
						ArtifactID:   "core",
						Version:      "1.2.3",
						LocalPath:    "/work/app/core",
						Dependencies: []Dependency{},
					},
				},
			},
		},
		Repositories: []string{"https://repo1.maven.org/maven2/"},
		Errors:       []string{"Unresolved: NotFound: missing"},
		Warnings:     []string{},
	}
}

func TestRoundTrip(t *testing.T) {
	want := sampleModel()

	var buf bytes.Buffer
	if err := WriteJSON(want, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestFieldNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(sampleModel(), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()

	for _, key := range []string{
		`"group"`, `"name"`, `"version"`, `"configurations"`,
		`"repositories"`, `"errors"`, `"warnings"`,
		`"groupId"`, `"artifactId"`, `"classifier"`, `"extension"`,
		`"dependencies"`, `"error"`, `"pomFile"`, `"localPath"`,
	} {
		if !strings.Contains(out, key) {
			t.Errorf("output missing %s", key)
		}
	}

	// Optional fields stay absent when unset.
	if strings.Contains(out, `"warning"`+":") {
		t.Error("unset warning should be omitted")
	}
}

func TestEmptyListsSerializeAsArrays(t *testing.T) {
	m := &TreeModel{
		Name:           "app",
		Configurations: []Configuration{},
		Repositories:   []string{},
		Errors:         []string{},
		Warnings:       []string{},
	}
	var buf bytes.Buffer
	if err := WriteJSON(m, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"configurations": []`, `"repositories": []`, `"errors": []`, `"warnings": []`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "null") {
		t.Errorf("empty lists serialized as null:\n%s", out)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")

	var buf bytes.Buffer
	if err := WriteJSON(sampleModel(), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "app" || len(got.Configurations) != 1 {
		t.Errorf("Load returned %+v", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load of missing file should fail")
	}
}

func TestNodeCount(t *testing.T) {
	m := sampleModel()
	if got := m.NodeCount(); got != 3 {
		t.Errorf("NodeCount = %d, want 3", got)
	}

	empty := &TreeModel{Configurations: []Configuration{}}
	if got := empty.NodeCount(); got != 0 {
		t.Errorf("NodeCount on empty model = %d, want 0", got)
	}
}

func TestIdentifier(t *testing.T) {
	d := &Dependency{GroupID: "org.slf4j", ArtifactID: "slf4j-api", Version: "2.0.13"}
	if got, want := d.Identifier(), "org.slf4j:slf4j-api:2.0.13"; got != want {
		t.Errorf("Identifier = %q, want %q", got, want)
	}
}
