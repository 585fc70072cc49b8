package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// TreeModel is the canonical serialization format for an extracted dependency
// tree. Field names are fixed for interoperability with downstream consumers;
// do not rename the JSON tags.
//
// The model is built once per extraction run and is immutable afterwards.
// Errors and Warnings contain deduplicated diagnostics aggregated from every
// level of the tree plus the repository classification.
type TreeModel struct {
	Group          string          `json:"group"`
	Name           string          `json:"name"`
	Version        string          `json:"version"`
	Configurations []Configuration `json:"configurations"`
	Repositories   []string        `json:"repositories"`
	Errors         []string        `json:"errors"`
	Warnings       []string        `json:"warnings"`
}

// Configuration holds the dependency roots of a single resolvable
// configuration, in declaration order.
type Configuration struct {
	Name         string       `json:"name"`
	Dependencies []Dependency `json:"dependencies"`
}

// Dependency is one node of the extracted tree.
//
// For a successfully resolved external package PomFile holds the absolute
// path to its POM; for a workspace (intra-build) project LocalPath holds the
// absolute path to the sub-project root. Exactly one of the two is set on a
// successful node, neither on an error leaf.
type Dependency struct {
	GroupID      string       `json:"groupId"`
	ArtifactID   string       `json:"artifactId"`
	Version      string       `json:"version"`
	Classifier   string       `json:"classifier"`
	Extension    string       `json:"extension"`
	Dependencies []Dependency `json:"dependencies"`
	Error        string       `json:"error,omitempty"`
	Warning      string       `json:"warning,omitempty"`
	PomFile      string       `json:"pomFile,omitempty"`
	LocalPath    string       `json:"localPath,omitempty"`
}

// Identifier returns the "group:artifact:version" coordinate of the node.
func (d *Dependency) Identifier() string {
	return fmt.Sprintf("%s:%s:%s", d.GroupID, d.ArtifactID, d.Version)
}

// NodeCount returns the number of nodes in the subtree rooted at d,
// including d itself.
func (d *Dependency) NodeCount() int {
	n := 1
	for i := range d.Dependencies {
		n += d.Dependencies[i].NodeCount()
	}
	return n
}

// NodeCount returns the total number of dependency nodes across all
// configurations. Diamond occurrences count once per occurrence.
func (m *TreeModel) NodeCount() int {
	n := 0
	for _, c := range m.Configurations {
		for i := range c.Dependencies {
			n += c.Dependencies[i].NodeCount()
		}
	}
	return n
}

// WriteJSON encodes the model as indented JSON to w.
func WriteJSON(m *TreeModel, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a model from r.
func ReadJSON(r io.Reader) (*TreeModel, error) {
	var m TreeModel
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &m, nil
}

// Load reads a model from a JSON file at path.
func Load(path string) (*TreeModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
