package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/strategycanvas/internal/canvas"
	"github.com/dbmrq/strategycanvas/internal/chart"
	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

const (
	gridLabelWidth = chart.MaxLabelLen + len(chart.Ellipsis) + 1
	gridCellWidth  = 12
)

// RatingGrid rates every filled-in competitor on every filled-in factor.
// Rows are factors and columns are competitors; both are read from the
// state on every call, so the grid follows edits made on earlier steps.
type RatingGrid struct {
	state   *canvas.State
	row     int
	col     int
	focused bool
}

// NewRatingGrid creates a grid over s with the cursor on the first cell.
func NewRatingGrid(s *canvas.State) *RatingGrid {
	return &RatingGrid{state: s}
}

// Cursor returns the selected row (factor) and column (competitor).
func (g *RatingGrid) Cursor() (row, col int) {
	return g.row, g.col
}

// Focus gives the grid keyboard focus.
func (g *RatingGrid) Focus() tea.Cmd {
	g.focused = true
	g.Clamp()
	return nil
}

// Blur removes keyboard focus.
func (g *RatingGrid) Blur() {
	g.focused = false
}

// Focused returns whether the grid has focus.
func (g *RatingGrid) Focused() bool {
	return g.focused
}

// Clamp keeps the cursor inside the grid after factors or competitors were
// removed.
func (g *RatingGrid) Clamp() {
	rows, cols := len(g.state.ValidFactors()), len(g.state.ValidCompetitors())
	g.row = clamp(g.row, rows)
	g.col = clamp(g.col, cols)
}

func clamp(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}

// Selected returns the factor and competitor under the cursor.
func (g *RatingGrid) Selected() (canvas.Factor, canvas.Competitor, bool) {
	factors, competitors := g.state.ValidFactors(), g.state.ValidCompetitors()
	if g.row >= len(factors) || g.col >= len(competitors) {
		return canvas.Factor{}, canvas.Competitor{}, false
	}
	return factors[g.row], competitors[g.col], true
}

// advance moves one cell right, wrapping to the next row.
func (g *RatingGrid) advance() {
	cols := len(g.state.ValidCompetitors())
	rows := len(g.state.ValidFactors())
	if g.col < cols-1 {
		g.col++
		return
	}
	if g.row < rows-1 {
		g.row++
		g.col = 0
	}
}

// Update handles input while the grid has focus.
func (g *RatingGrid) Update(msg tea.Msg) tea.Cmd {
	if !g.focused {
		return nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	g.Clamp()
	switch k := key.String(); k {
	case "up", "k":
		g.row = clamp(g.row-1, len(g.state.ValidFactors()))
	case "down", "j":
		g.row = clamp(g.row+1, len(g.state.ValidFactors()))
	case "left", "h":
		g.col = clamp(g.col-1, len(g.state.ValidCompetitors()))
	case "right", "l":
		g.col = clamp(g.col+1, len(g.state.ValidCompetitors()))
	case "0", "1", "2", "3", "4", "5":
		f, c, ok := g.Selected()
		if !ok {
			return nil
		}
		r, err := canvas.ParseRating(k)
		if err != nil {
			return nil
		}
		if err := g.state.SetRating(c.ID, f.ID, r); err != nil {
			return nil
		}
		g.advance()
	case "-", "backspace", "delete":
		if f, c, ok := g.Selected(); ok {
			g.state.ClearRating(c.ID, f.ID)
		}
	}
	return nil
}

// View renders the grid, the selected pair and the rating scale.
func (g *RatingGrid) View() string {
	factors, competitors := g.state.ValidFactors(), g.state.ValidCompetitors()
	if len(factors) == 0 || len(competitors) == 0 {
		return styles.MutedTextStyle.Render("Nothing to rate yet. Go back and add factors and competitors.")
	}

	var b strings.Builder

	labelStyle := lipgloss.NewStyle().Width(gridLabelWidth)
	b.WriteString(labelStyle.Render(""))
	for i, c := range competitors {
		name := chart.Truncate(c.Name, gridCellWidth-len(chart.Ellipsis)-1)
		head := lipgloss.NewStyle().
			Width(gridCellWidth).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(lipgloss.Color(chart.ColorAt(i)))
		b.WriteString(head.Render(name))
	}
	b.WriteString("\n")

	for ri, f := range factors {
		b.WriteString(labelStyle.Render(chart.Truncate(f.Label, chart.MaxLabelLen)))
		for ci, c := range competitors {
			b.WriteString(g.renderCell(ri, ci, c, f))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f, c, ok := g.Selected(); ok {
		current := canvas.Unset
		if r, present := g.state.Rating(c.ID, f.ID); present {
			current = r
		}
		b.WriteString(styles.HeaderLabelStyle.Render("Rating "))
		b.WriteString(styles.HeaderValueStyle.Render(c.Name))
		b.WriteString(styles.HeaderLabelStyle.Render(" on "))
		b.WriteString(styles.HeaderValueStyle.Render(f.Label))
		b.WriteString("\n\n")
		b.WriteString(g.renderScale(current))
	}

	if missing := g.state.MissingRatings(); missing > 0 {
		b.WriteString("\n")
		b.WriteString(styles.WarningTextStyle.Render(fmt.Sprintf("%d rating(s) still missing", missing)))
	} else {
		b.WriteString("\n")
		b.WriteString(styles.SuccessTextStyle.Render("All pairs rated"))
	}

	return b.String()
}

func (g *RatingGrid) renderCell(row, col int, c canvas.Competitor, f canvas.Factor) string {
	text := canvas.Unset.String()
	style := styles.CellEmptyStyle
	if r, ok := g.state.Rating(c.ID, f.ID); ok {
		text = r.String()
		style = styles.CellStyle
	}
	if g.focused && row == g.row && col == g.col {
		style = styles.CellSelectedStyle
		text = "[" + text + "]"
	}
	return style.Width(gridCellWidth).Render(text)
}

func (g *RatingGrid) renderScale(current canvas.Rating) string {
	var lines []string
	for r := canvas.MinRating; r <= canvas.MaxRating; r++ {
		line := fmt.Sprintf("%s  %s", r, canvas.Guidance(r))
		if r == current {
			lines = append(lines, styles.KeyStyle.Render("› "+line))
		} else {
			lines = append(lines, styles.MutedTextStyle.Render("  "+line))
		}
	}
	return strings.Join(lines, "\n")
}
