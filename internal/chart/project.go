// Package chart turns a canvas into chart data and draws it, either as a
// raster image for export or as a small plot for the terminal.
package chart

import (
	"github.com/dbmrq/strategycanvas/internal/canvas"
)

// MaxLabelLen is the longest factor label shown on the chart axis before it
// is cut short.
const MaxLabelLen = 15

// Ellipsis is appended to cut labels.
const Ellipsis = "..."

// Row is one factor's position on the chart.
type Row struct {
	// Label is the axis label, cut to MaxLabelLen runes.
	Label string
	// Factor is the full factor label.
	Factor string
	// Values holds one rating per competitor, in Names order. Unset ratings
	// are 0.
	Values []int
	// Names are the competitor names the values belong to.
	Names []string
}

// Value returns the rating for the competitor with the given name. With
// duplicate names the first match wins.
func (r Row) Value(name string) (int, bool) {
	for i, n := range r.Names {
		if n == name {
			return r.Values[i], true
		}
	}
	return 0, false
}

// Series describes one competitor's line.
type Series struct {
	Name  string
	Color string
	Own   bool
}

// Project builds one row per valid factor, in order. It reads the state
// fresh on every call; nothing is cached.
func Project(s *canvas.State) []Row {
	factors := s.ValidFactors()
	competitors := s.ValidCompetitors()

	names := make([]string, len(competitors))
	for i, c := range competitors {
		names[i] = c.Name
	}

	rows := make([]Row, 0, len(factors))
	for _, f := range factors {
		values := make([]int, len(competitors))
		for i, c := range competitors {
			values[i] = int(s.RatingOrZero(c.ID, f.ID))
		}
		rows = append(rows, Row{
			Label:  Truncate(f.Label, MaxLabelLen),
			Factor: f.Label,
			Values: values,
			Names:  names,
		})
	}
	return rows
}

// SeriesOf returns the legend entries for the valid competitors, with
// palette colours assigned round-robin.
func SeriesOf(s *canvas.State) []Series {
	competitors := s.ValidCompetitors()
	out := make([]Series, len(competitors))
	for i, c := range competitors {
		out[i] = Series{Name: c.Name, Color: ColorAt(i), Own: c.Own}
	}
	return out
}

// Truncate shortens label to n runes followed by Ellipsis when it is longer
// than n runes.
func Truncate(label string, n int) string {
	runes := []rune(label)
	if len(runes) <= n {
		return label
	}
	return string(runes[:n]) + Ellipsis
}
