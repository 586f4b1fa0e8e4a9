package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/strategycanvas/internal/tui/styles"
)

// Header is the top bar: the application title, the canvas counts and the
// output directory.
type Header struct {
	factors     int
	competitors int
	outputDir   string
	width       int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{outputDir: "."}
}

// SetCounts sets the number of filled-in factors and competitors.
func (h *Header) SetCounts(factors, competitors int) {
	h.factors = factors
	h.competitors = competitors
}

// SetOutputDir sets the directory exports are written to.
func (h *Header) SetOutputDir(dir string) {
	h.outputDir = dir
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	title := styles.TitleStyle.Render("STRATEGY CANVAS")

	sep := lipgloss.NewStyle().
		Foreground(styles.MutedLight).
		Render(" │ ")

	content := title + sep +
		styles.HeaderLabelStyle.Render("Factors: ") +
		styles.HeaderValueStyle.Render(strconv.Itoa(h.factors)) + sep +
		styles.HeaderLabelStyle.Render("Competitors: ") +
		styles.HeaderValueStyle.Render(strconv.Itoa(h.competitors)) + sep +
		styles.HeaderLabelStyle.Render("Output: ") +
		styles.HeaderValueStyle.Render(h.outputDir)

	headerStyle := lipgloss.NewStyle().
		Background(styles.Primary).
		Foreground(styles.Foreground).
		Padding(0, 1)

	if h.width > 0 {
		headerStyle = headerStyle.Width(h.width)
	}

	return headerStyle.Render(content)
}
