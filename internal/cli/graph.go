package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gradletree/gradletree/pkg/model"
	"github.com/gradletree/gradletree/pkg/render"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	format        string  // dot, svg, png, pdf
	output        string  // output file path (stdout for dot if empty)
	configuration string  // render only the named configuration
	detailed      bool    // include POM paths and diagnostics in labels
	scale         float64 // PNG resolution multiplier
}

// graphCommand creates the graph command for exporting visual output.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: "svg", scale: 2.0}

	cmd := &cobra.Command{
		Use:   "graph <model.json>",
		Short: "Export an extracted dependency tree as DOT, SVG, PNG, or PDF",
		Long: `Export an extracted dependency tree as a Graphviz visualization.

Each configuration is drawn as its own cluster. Nodes with resolution errors
are outlined in red, workspace projects are filled in blue, and --detailed
adds POM locations and diagnostic text to the labels.

PNG and PDF output require librsvg (rsvg-convert) to be installed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.Load(args[0])
			if err != nil {
				return err
			}
			return c.runGraph(m, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg (default), png, pdf")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: derived from format)")
	cmd.Flags().StringVarP(&opts.configuration, "configuration", "c", "", "render only the named configuration")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include POM paths and diagnostics in node labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG resolution multiplier")

	return cmd
}

// runGraph renders the model in the requested format and writes it out.
func (c *CLI) runGraph(m *model.TreeModel, opts graphOpts) error {
	dot := render.ToDOT(m, render.Options{
		Configuration: opts.configuration,
		Detailed:      opts.detailed,
	})

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(opts.format) {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderSVG(dot)
	case "png":
		data, err = render.RenderPNG(dot, opts.scale)
	case "pdf":
		data, err = render.RenderPDF(dot)
	default:
		return fmt.Errorf("unknown format %q (supported: dot, svg, png, pdf)", opts.format)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}

	path := opts.output
	if path == "" && opts.format != "dot" {
		path = "deps." + strings.ToLower(opts.format)
	}
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return err
	}

	if path != "" {
		printSuccess("Rendered %d nodes", m.NodeCount())
		printFile(path)
	}
	return nil
}
