package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gradletree/gradletree/pkg/model"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	listLocalStyle    = lipgloss.NewStyle().Foreground(colorBlue)
)

// treeRow is one line of the browser: either a configuration heading or a
// dependency node at some depth.
type treeRow struct {
	dep      *model.Dependency // nil for configuration headings
	config   string            // heading text when dep is nil
	depth    int
	expanded bool
}

// treeBrowser is the bubbletea model for interactive tree navigation.
// Collapsed subtrees are tracked per row, so the same package reached via
// two paths folds independently.
type treeBrowser struct {
	model  *model.TreeModel
	filter string
	rows   []treeRow
	hidden map[*model.Dependency]bool
	cursor int
	height int
	offset int
}

// newTreeBrowser flattens the model into browsable rows. An empty
// configuration filter includes every configuration.
func newTreeBrowser(m *model.TreeModel, configuration string) *treeBrowser {
	b := &treeBrowser{
		model:  m,
		filter: configuration,
		hidden: make(map[*model.Dependency]bool),
		height: 20,
	}
	b.rebuild()
	return b
}

// rebuild recomputes the visible rows from the model and the collapse set.
func (b *treeBrowser) rebuild() {
	b.rows = b.rows[:0]
	for i := range b.model.Configurations {
		cfg := &b.model.Configurations[i]
		if b.filter != "" && cfg.Name != b.filter {
			continue
		}
		b.rows = append(b.rows, treeRow{config: cfg.Name})
		for j := range cfg.Dependencies {
			b.appendVisible(&cfg.Dependencies[j], 1)
		}
	}
	if b.cursor >= len(b.rows) {
		b.cursor = len(b.rows) - 1
	}
}

func (b *treeBrowser) appendVisible(d *model.Dependency, depth int) {
	b.rows = append(b.rows, treeRow{dep: d, depth: depth, expanded: !b.hidden[d]})
	if b.hidden[d] {
		return
	}
	for i := range d.Dependencies {
		b.appendVisible(&d.Dependencies[i], depth+1)
	}
}

func (b *treeBrowser) Init() tea.Cmd {
	return nil
}

func (b *treeBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
				if b.cursor < b.offset {
					b.offset = b.cursor
				}
			}
		case "down", "j":
			if b.cursor < len(b.rows)-1 {
				b.cursor++
				if b.cursor >= b.offset+b.height {
					b.offset = b.cursor - b.height + 1
				}
			}
		case "enter", " ":
			row := b.rows[b.cursor]
			if row.dep != nil && len(row.dep.Dependencies) > 0 {
				b.hidden[row.dep] = !b.hidden[row.dep]
				b.rebuild()
			}
		}
	case tea.WindowSizeMsg:
		b.height = msg.Height - 5
		if b.height < 5 {
			b.height = 5
		}
	}
	return b, nil
}

func (b *treeBrowser) View() string {
	var out strings.Builder

	out.WriteString(StyleTitle.Render("Dependency Tree"))
	out.WriteString("\n")
	out.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ fold/unfold  q quit"))
	out.WriteString("\n\n")

	end := b.offset + b.height
	if end > len(b.rows) {
		end = len(b.rows)
	}
	for i := b.offset; i < end; i++ {
		row := b.rows[i]

		cursor := "  "
		if i == b.cursor {
			cursor = "▸ "
		}

		if row.dep == nil {
			out.WriteString(cursor + StyleHighlight.Render(row.config) + "\n")
			continue
		}

		line := strings.Repeat("  ", row.depth) + rowLabel(row)
		switch {
		case i == b.cursor:
			line = listSelectedStyle.Render(line)
		case row.dep.Error != "":
			line = listErrorStyle.Render(line)
		case row.dep.LocalPath != "":
			line = listLocalStyle.Render(line)
		default:
			line = listNormalStyle.Render(line)
		}
		out.WriteString(cursor + line + "\n")
	}

	out.WriteString("\n")
	out.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", b.cursor+1, len(b.rows))))

	return out.String()
}

// rowLabel renders a dependency row with its fold marker and status.
func rowLabel(row treeRow) string {
	marker := "  "
	if len(row.dep.Dependencies) > 0 {
		if row.expanded {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}

	label := marker + row.dep.Identifier()
	if row.dep.Error != "" {
		label += " " + iconError
	}
	if row.dep.Warning != "" {
		label += " " + iconWarning
	}
	if row.dep.LocalPath != "" {
		label += " (workspace)"
	}
	return label
}
