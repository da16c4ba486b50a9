package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// FileChange describes one pending worktree change shown before release.
type FileChange struct {
	Path   string
	Status string // modified, added, deleted, renamed, untracked
}

// Changes prints the pending-change table shown before the release commit.
func (p *Printer) Changes(changes []FileChange) {
	if len(changes) == 0 {
		return
	}

	p.Println()

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(p.tableStyle())

	t.AppendHeader(table.Row{"File", "Status"})

	for _, c := range changes {
		status := c.Status
		if p.isTTY {
			status = colorStatus(c.Status)
		}
		t.AppendRow(table.Row{c.Path, status})
	}

	t.Render()
	p.Println()
}

// colorStatus applies color to a change status.
func colorStatus(status string) string {
	var style lipgloss.Style
	switch status {
	case "added", "untracked":
		style = lipgloss.NewStyle().Foreground(ColorSuccess)
	case "deleted":
		style = lipgloss.NewStyle().Foreground(ColorError)
	case "modified", "renamed":
		style = lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		style = lipgloss.NewStyle().Foreground(ColorMuted)
	}
	return style.Render(status)
}

// tableStyle returns the standard cosmic-themed table style.
func (p *Printer) tableStyle() table.Style {
	style := table.StyleRounded
	if p.isTTY {
		style.Color.Header = text.Colors{text.FgHiMagenta, text.Bold}
		style.Color.Border = text.Colors{text.FgHiBlack}
	}
	style.Options.SeparateRows = false
	return style
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	if p.isTTY {
		style := lipgloss.NewStyle().Foreground(ColorStar).Bold(true)
		p.Println(style.Render(title))
	} else {
		p.Println(title)
	}
}
