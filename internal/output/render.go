package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table represents a bordered text table for terminal output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	t := Active
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(60).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Render(title))
}

// RenderHeading renders a section heading.
func RenderHeading(text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Active.Accent).Render(text)
}

// RenderTable renders a bordered table with headers and rows.
// The first column is left-aligned, the rest right-aligned.
func RenderTable(tbl Table) string {
	if len(tbl.Rows) == 0 && len(tbl.Headers) == 0 {
		return ""
	}
	t := Active
	dim := lipgloss.NewStyle().Foreground(t.Border)
	header := lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)

	numCols := len(tbl.Headers)
	if numCols == 0 {
		numCols = len(tbl.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range tbl.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range tbl.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dim.Render(b.String()) + "\n"
	}

	var b strings.Builder
	if tbl.Title != "" {
		b.WriteString("  " + header.Render(tbl.Title) + "\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(tbl.Headers) > 0 {
		b.WriteString(dim.Render("│"))
		for i, h := range tbl.Headers {
			b.WriteString(header.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			b.WriteString(dim.Render("│"))
		}
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range tbl.Rows {
		b.WriteString(dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if i == 0 {
				b.WriteString(value.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(value.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			b.WriteString(dim.Render("│"))
		}
		b.WriteString("\n")
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}
