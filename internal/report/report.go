// Package report builds a Markdown summary of a canvas and renders it for
// the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/dbmrq/strategycanvas/internal/canvas"
	"github.com/dbmrq/strategycanvas/internal/export"
)

// Markdown summarises s: the rating table, each competitor's strongest
// factors, and any new factors noted while exploring.
func Markdown(s *canvas.State, title string) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}

	table := export.NewTable(s)
	if len(table.Rows) == 0 {
		b.WriteString("_No factors rated yet._\n")
	} else {
		b.WriteString(table.Markdown())
	}

	if lines := strengths(s); len(lines) > 0 {
		b.WriteString("\n## Strongest factors\n\n")
		for _, l := range lines {
			b.WriteString("- " + l + "\n")
		}
	}

	if nf := s.ValidNewFactors(); len(nf) > 0 {
		b.WriteString("\n## Potential New Competitive Factors\n\n")
		for _, f := range nf {
			b.WriteString("- " + strings.TrimSpace(f.Label) + "\n")
		}
	}
	return b.String()
}

// strengths lists, per competitor, the factors where it scores its highest
// rating. Competitors with no rating above zero are skipped.
func strengths(s *canvas.State) []string {
	factors := s.ValidFactors()
	var out []string
	for _, c := range s.ValidCompetitors() {
		best := canvas.Rating(0)
		var labels []string
		for _, f := range factors {
			r, ok := s.Rating(c.ID, f.ID)
			switch {
			case !ok:
			case r > best:
				best, labels = r, []string{f.Label}
			case r == best && r > 0:
				labels = append(labels, f.Label)
			}
		}
		if best == 0 {
			continue
		}
		out = append(out, fmt.Sprintf("**%s**: %s (%d/5)", c.Name, strings.Join(labels, ", "), best))
	}
	return out
}

// Render styles Markdown for a terminal of the given width.
func Render(md string, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
