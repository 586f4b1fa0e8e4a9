package export

import (
	"image"
	"sync"
)

// Layout geometry in logical pixels.
const (
	DefaultWidth   = 800
	DefaultPadding = 40
	DefaultScale   = 2.0
)

// Layout is the off-screen page that is rasterized into the exported PNG:
// a title, the chart image, the data table and an attribution line.
//
// A Layout owns a pixel buffer once rasterized. Call Dispose when done; it
// is safe to call more than once.
type Layout struct {
	Title       string
	Chart       image.Image
	Table       Table
	Attribution string

	Width   int
	Padding int
	Scale   float64

	mu       sync.Mutex
	target   *image.RGBA
	disposed bool
}

// NewLayout returns a layout with the default geometry.
func NewLayout(title string, chartImg image.Image, table Table, attribution string) *Layout {
	return &Layout{
		Title:       title,
		Chart:       chartImg,
		Table:       table,
		Attribution: attribution,
		Width:       DefaultWidth,
		Padding:     DefaultPadding,
		Scale:       DefaultScale,
	}
}

// px converts logical pixels to device pixels.
func (l *Layout) px(v float64) int {
	s := l.Scale
	if s <= 0 {
		s = 1
	}
	return int(v*s + 0.5)
}

// ContentWidth is the logical width inside the padding.
func (l *Layout) ContentWidth() int {
	return l.Width - 2*l.Padding
}

// Target allocates the device-pixel buffer of the given height. It returns
// nil once the layout has been disposed.
func (l *Layout) Target(height int) *image.RGBA {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.disposed {
		return nil
	}
	l.target = image.NewRGBA(image.Rect(0, 0, l.px(float64(l.Width)), height))
	return l.target
}

// Dispose releases the pixel buffer and the chart image.
func (l *Layout) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.target = nil
	l.Chart = nil
	l.disposed = true
}

// Disposed reports whether Dispose has been called.
func (l *Layout) Disposed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.disposed
}
