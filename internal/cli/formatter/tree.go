package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a tree. Level 0 items are roots.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders items with box-drawing connectors and right-aligns
// their details in a dim column.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, len(items))
	width := 0
	// open[l] is true while the ancestor at level l still has siblings below.
	open := map[int]bool{}
	for i, item := range items {
		var prefix strings.Builder
		for l := 1; l < item.Level; l++ {
			if open[l] {
				prefix.WriteString(treePipe)
			} else {
				prefix.WriteString(treeBlank)
			}
		}
		if item.Level > 0 {
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		open[item.Level] = !item.IsLast

		title := item.Title
		if item.Level == 0 {
			title = Bold(title)
		}
		lines[i] = Dim(prefix.String()) + title
		width = max(width, lipgloss.Width(lines[i]))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(lines[i])
		if item.Detail != "" {
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(lines[i])+colGap))
			b.WriteString(Dim(item.Detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}
