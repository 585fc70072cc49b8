package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gradletree/gradletree/pkg/model"
)

// Options configures diagram generation.
type Options struct {
	// Configuration limits the diagram to one configuration by name.
	// Empty renders all of them.
	Configuration string

	// Detailed includes classifier, extension, and POM or workspace paths
	// in node labels. When false, only the coordinate is shown.
	Detailed bool
}

// ToDOT converts a tree model to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
func ToDOT(m *model.TreeModel, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	w := &dotWriter{buf: &buf, detailed: opts.Detailed}
	for i, cfg := range m.Configurations {
		if opts.Configuration != "" && cfg.Name != opts.Configuration {
			continue
		}
		fmt.Fprintf(&buf, "\n  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", cfg.Name)
		buf.WriteString("    color=grey;\n")
		for j := range cfg.Dependencies {
			w.writeTree(&cfg.Dependencies[j], "")
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

// dotWriter numbers nodes sequentially: each occurrence in the tree gets its
// own DOT node, preserving diamond duplication.
type dotWriter struct {
	buf      *bytes.Buffer
	detailed bool
	next     int
}

func (w *dotWriter) writeTree(d *model.Dependency, parentID string) {
	id := fmt.Sprintf("n%d", w.next)
	w.next++

	attrs := []string{fmt.Sprintf("label=%q", w.label(d))}
	switch {
	case d.Error != "":
		attrs = append(attrs, "color=red", "fontcolor=red")
	case d.LocalPath != "":
		attrs = append(attrs, "fillcolor=lightblue")
	}
	if d.Warning != "" {
		attrs = append(attrs, "color=orange")
	}
	fmt.Fprintf(w.buf, "    %s [%s];\n", id, strings.Join(attrs, ", "))

	if parentID != "" {
		fmt.Fprintf(w.buf, "    %s -> %s;\n", parentID, id)
	}
	for i := range d.Dependencies {
		w.writeTree(&d.Dependencies[i], id)
	}
}

func (w *dotWriter) label(d *model.Dependency) string {
	if !w.detailed {
		return d.Identifier()
	}

	parts := []string{d.Identifier()}
	if d.Classifier != "" {
		parts = append(parts, "classifier: "+d.Classifier)
	}
	if d.Extension != "" {
		parts = append(parts, "extension: "+d.Extension)
	}
	if d.PomFile != "" {
		parts = append(parts, "pom: "+d.PomFile)
	}
	if d.LocalPath != "" {
		parts = append(parts, "path: "+d.LocalPath)
	}
	if d.Error != "" {
		parts = append(parts, "error: "+d.Error)
	}
	return strings.Join(parts, "\n")
}
