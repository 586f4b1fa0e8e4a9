package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dbmrq/strategycanvas/internal/chart"
	"github.com/dbmrq/strategycanvas/internal/export"
	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

// resultsView renders the last step: the chart preview, the data table,
// the attribution and the exploration panel.
func (m *WizardModel) resultsView() string {
	width := m.contentWidth()

	var sections []string

	rows, series := chart.Project(m.state), chart.SeriesOf(m.state)
	if preview := chart.Preview(rows, series, width); preview != "" {
		sections = append(sections, preview)
	}

	sections = append(sections, renderTable(export.NewTable(m.state)))

	if m.attribution != "" {
		sections = append(sections, styles.MutedTextStyle.Italic(true).Render(m.attribution))
	}
	if m.lastExport != "" {
		sections = append(sections, styles.SuccessTextStyle.Render("Saved to "+m.lastExport))
	}

	sections = append(sections, m.exploreView(width))
	return strings.Join(sections, "\n\n")
}

func (m *WizardModel) exploreView(width int) string {
	var b strings.Builder
	box := styles.BoxStyle

	if !m.state.Exploring() {
		b.WriteString(styles.SectionTitleStyle.Render("Explore New Opportunities"))
		b.WriteString("\n")
		b.WriteString("Are there new categories that may matter to your customers but aren't being addressed by you or your competitors?")
		b.WriteString("\n\n")
		b.WriteString(styles.KeyStyle.Render("n") + styles.HelpStyle.Render(" explore new factors"))
	} else {
		if m.focus == FocusEdit {
			box = styles.FocusedBoxStyle
		}
		b.WriteString(lipgloss.NewStyle().Foreground(styles.Success).Bold(true).
			Render("Potential New Competitive Factors"))
		b.WriteString("\n")
		b.WriteString("Think about what customers might value that isn't currently being competed on.")
		b.WriteString("\n\n")
		b.WriteString(m.newFactors.View())
	}

	return box.Width(min(width, 80)).Render(b.String())
}

// renderTable draws the ratings table shown on the results step.
func renderTable(t export.Table) string {
	if len(t.Rows) == 0 {
		return styles.MutedTextStyle.Render("No factors rated yet.")
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Foreground).Padding(0, 1)
	firstColStyle := lipgloss.NewStyle().Foreground(styles.Foreground).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(styles.MutedLight).Padding(0, 1).Align(lipgloss.Center)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderColor)).
		Headers(t.Header...).
		Rows(t.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return firstColStyle
			default:
				return cellStyle
			}
		}).
		String()
}
