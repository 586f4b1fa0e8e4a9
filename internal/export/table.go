package export

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dbmrq/strategycanvas/internal/canvas"
)

// Table is the data table printed under the chart. Unlike the chart axis it
// keeps factor labels whole.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable builds the table from the valid factors and competitors of s.
// Unset ratings print as "0".
func NewTable(s *canvas.State) Table {
	competitors := s.ValidCompetitors()

	header := make([]string, 0, len(competitors)+1)
	header = append(header, "Factor")
	for _, c := range competitors {
		header = append(header, c.Name)
	}

	var rows [][]string
	for _, f := range s.ValidFactors() {
		row := make([]string, 0, len(competitors)+1)
		row = append(row, f.Label)
		for _, c := range competitors {
			row = append(row, s.RatingOrZero(c.ID, f.ID).String())
		}
		rows = append(rows, row)
	}
	return Table{Header: header, Rows: rows}
}

// Markdown renders the table as a GitHub-flavoured Markdown table.
func (t Table) Markdown() string {
	if len(t.Header) == 0 {
		return ""
	}
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = escapeCells(r)
	}
	md := table.New().
		Border(lipgloss.MarkdownBorder()).
		BorderTop(false).
		BorderBottom(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(escapeCells(t.Header)...).
		Rows(rows...)
	return md.String() + "\n"
}

func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		c = strings.ReplaceAll(c, "|", `\|`)
		out[i] = strings.ReplaceAll(c, "\n", " ")
	}
	return out
}
