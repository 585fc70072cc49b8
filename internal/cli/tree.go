package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gradletree/gradletree/pkg/model"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	configuration string // show only the named configuration
	interactive   bool   // launch the interactive browser
}

// treeCommand creates the tree command for inspecting an extracted model.
func (c *CLI) treeCommand() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree <model.json|project-dir>",
		Short: "Print an extracted dependency tree",
		Long: `Print an extracted dependency tree to the terminal.

The input is a model file produced by 'extract', or a Gradle project directory
to extract on the fly. Diamond dependencies appear once per path, matching
Gradle's own dependency report. Use --interactive to browse large trees with
collapsible nodes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.loadOrExtract(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if opts.interactive {
				return runTreeBrowser(m, opts.configuration)
			}
			printTree(m, opts.configuration)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.configuration, "configuration", "c", "", "show only the named configuration")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the tree interactively")

	return cmd
}

// loadOrExtract reads a model file, or runs a fresh extraction when the
// argument is a directory.
func (c *CLI) loadOrExtract(ctx context.Context, arg string) (*model.TreeModel, error) {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return c.extractModel(ctx, arg, extractOpts{})
	}
	return model.Load(arg)
}

// printTree writes the model to stdout in a Gradle-report-like layout.
func printTree(m *model.TreeModel, configuration string) {
	fmt.Println(StyleTitle.Render(projectHeading(m)))

	for i := range m.Configurations {
		cfg := &m.Configurations[i]
		if configuration != "" && cfg.Name != configuration {
			continue
		}
		printNewline()
		fmt.Println(StyleHighlight.Render(cfg.Name))
		for j := range cfg.Dependencies {
			printBranch(&cfg.Dependencies[j], "", j == len(cfg.Dependencies)-1)
		}
		if len(cfg.Dependencies) == 0 {
			fmt.Println(StyleDim.Render("    (no dependencies)"))
		}
	}

	if len(m.Errors) > 0 || len(m.Warnings) > 0 {
		printNewline()
		for _, e := range m.Errors {
			printError("%s", e)
		}
		for _, w := range m.Warnings {
			printWarning("%s", w)
		}
	}
}

// printBranch prints one node and recurses into its children.
func printBranch(d *model.Dependency, prefix string, last bool) {
	connector := "├── "
	childPrefix := prefix + "│   "
	if last {
		connector = "└── "
		childPrefix = prefix + "    "
	}
	fmt.Println(prefix + StyleDim.Render(connector) + nodeLine(d))

	for i := range d.Dependencies {
		printBranch(&d.Dependencies[i], childPrefix, i == len(d.Dependencies)-1)
	}
}

// nodeLine renders a single dependency with its status markers.
func nodeLine(d *model.Dependency) string {
	label := StyleValue.Render(d.Identifier())
	switch {
	case d.Error != "":
		return label + " " + styleIconError.Render(iconError) + " " + StyleDim.Render(d.Error)
	case d.LocalPath != "":
		return label + " " + StyleDim.Render("(workspace)")
	case d.Warning != "":
		return label + " " + styleIconWarning.Render(iconWarning) + " " + StyleDim.Render(d.Warning)
	default:
		return label
	}
}

func projectHeading(m *model.TreeModel) string {
	id := strings.TrimPrefix(fmt.Sprintf("%s:%s", m.Group, m.Name), ":")
	if m.Version != "" {
		id += ":" + m.Version
	}
	return id
}

// runTreeBrowser launches the interactive tree view.
func runTreeBrowser(m *model.TreeModel, configuration string) error {
	browser := newTreeBrowser(m, configuration)
	if len(browser.rows) == 0 {
		printInfo("Nothing to browse: the model has no matching configurations")
		return nil
	}
	_, err := tea.NewProgram(browser, tea.WithAltScreen()).Run()
	return err
}
