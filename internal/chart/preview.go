package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	previewMarker = "●"
	previewEmpty  = "·"
)

// Preview draws the chart as text: one line per rating level from 5 down
// to 0, one column per factor, and a coloured marker for each competitor at
// its rating. Competitors sharing a cell sit side by side. The axis labels
// and a legend follow.
//
// maxWidth limits the total width; columns shrink to fit but never below
// one marker per competitor.
func Preview(rows []Row, series []Series, maxWidth int) string {
	if len(rows) == 0 || len(series) == 0 {
		return ""
	}

	const gutter = 3 // "5 │"
	colWidth := len(series) + 2
	if w := maxLabelWidth(rows) + 1; w > colWidth {
		colWidth = w
	}
	if maxWidth > 0 {
		if fit := (maxWidth - gutter) / len(rows); fit < colWidth {
			colWidth = fit
		}
	}
	if colWidth < len(series)+1 {
		colWidth = len(series) + 1
	}

	markers := make([]string, len(series))
	for i, s := range series {
		markers[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Render(previewMarker)
	}
	axis := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	var b strings.Builder
	for level := 5; level >= 0; level-- {
		b.WriteString(axis.Render(string(rune('0'+level)) + " │"))
		for _, row := range rows {
			used := 0
			var cell strings.Builder
			for i := range series {
				if i < len(row.Values) && row.Values[i] == level {
					cell.WriteString(markers[i])
					used++
				}
			}
			if used == 0 {
				cell.WriteString(axis.Render(previewEmpty))
				used = 1
			}
			b.WriteString(strings.Repeat(" ", (colWidth-used)/2))
			b.WriteString(cell.String())
			b.WriteString(strings.Repeat(" ", colWidth-used-(colWidth-used)/2))
		}
		b.WriteString("\n")
	}

	b.WriteString(axis.Render("  └" + strings.Repeat("─", colWidth*len(rows))))
	b.WriteString("\n   ")
	for _, row := range rows {
		label := row.Label
		if r := []rune(label); len(r) > colWidth-1 {
			label = string(r[:colWidth-1])
		}
		b.WriteString(lipgloss.PlaceHorizontal(colWidth, lipgloss.Center, label))
	}
	b.WriteString("\n\n")

	legend := make([]string, len(series))
	for i, s := range series {
		legend[i] = markers[i] + " " + s.Name
	}
	b.WriteString("   " + strings.Join(legend, "   "))

	return b.String()
}

func maxLabelWidth(rows []Row) int {
	w := 0
	for _, r := range rows {
		if n := lipgloss.Width(r.Label); n > w {
			w = n
		}
	}
	return w
}
