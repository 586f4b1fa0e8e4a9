package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/dbmrq/strategycanvas/internal/chart"
)

// Rasterizer turns chart data and layouts into images. Each call is one
// export stage.
type Rasterizer interface {
	RasterizeChart(ctx context.Context, rows []chart.Row, series []chart.Series) (image.Image, error)
	RasterizeLayout(ctx context.Context, l *Layout) (image.Image, error)
}

// ErrDisposed is returned when rasterizing a layout that was already disposed.
var ErrDisposed = errors.New("layout already disposed")

var (
	colorText   = color.RGBA{0x11, 0x18, 0x27, 0xff}
	colorMuted  = color.RGBA{0x6b, 0x72, 0x80, 0xff}
	colorBorder = color.RGBA{0xe5, 0xe7, 0xeb, 0xff}
	colorHeadBg = color.RGBA{0xf3, 0xf4, 0xf6, 0xff}
)

// Logical sizes used by the layout.
const (
	titleSize       = 24.0
	cellSize        = 14.0
	attributionSize = 12.0
	rowHeight       = 32.0
	cellLine        = cellSize * 1.4
	cellPadding     = 8.0
	gap             = 24.0
)

var (
	fontsOnce sync.Once
	fontsErr  error
	regular   *opentype.Font
	bold      *opentype.Font
)

func loadFonts() error {
	fontsOnce.Do(func() {
		regular, fontsErr = opentype.Parse(goregular.TTF)
		if fontsErr != nil {
			return
		}
		bold, fontsErr = opentype.Parse(gobold.TTF)
	})
	return fontsErr
}

// ImageRasterizer is the default Rasterizer. Charts come from a
// chart.Renderer; layouts are composed with x/image.
type ImageRasterizer struct {
	Chart *chart.Renderer
}

// NewImageRasterizer returns a rasterizer drawing charts at the given
// logical size and scale.
func NewImageRasterizer(chartWidth, chartHeight int, scale float64) *ImageRasterizer {
	return &ImageRasterizer{Chart: chart.NewRenderer(chartWidth, chartHeight, scale)}
}

// RasterizeChart renders the chart image.
func (r *ImageRasterizer) RasterizeChart(ctx context.Context, rows []chart.Row, series []chart.Series) (image.Image, error) {
	return r.Chart.Render(ctx, rows, series)
}

// RasterizeLayout composes the layout on a white page.
func (r *ImageRasterizer) RasterizeLayout(ctx context.Context, l *Layout) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := loadFonts(); err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	p := &painter{l: l}
	if err := p.openFaces(); err != nil {
		return nil, err
	}
	defer p.closeFaces()

	dst := l.Target(p.height())
	if dst == nil {
		return nil, ErrDisposed
	}
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	p.paint(dst)
	return dst, nil
}

type painter struct {
	l           *Layout
	title       font.Face
	cell        font.Face
	cellBold    font.Face
	attribution font.Face
}

func (p *painter) face(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size * p.scale(),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func (p *painter) scale() float64 {
	if p.l.Scale <= 0 {
		return 1
	}
	return p.l.Scale
}

func (p *painter) openFaces() error {
	var err error
	if p.title, err = p.face(bold, titleSize); err != nil {
		return fmt.Errorf("title font: %w", err)
	}
	if p.cell, err = p.face(regular, cellSize); err != nil {
		return fmt.Errorf("table font: %w", err)
	}
	if p.cellBold, err = p.face(bold, cellSize); err != nil {
		return fmt.Errorf("table font: %w", err)
	}
	if p.attribution, err = p.face(regular, attributionSize); err != nil {
		return fmt.Errorf("attribution font: %w", err)
	}
	return nil
}

func (p *painter) closeFaces() {
	for _, f := range []font.Face{p.title, p.cell, p.cellBold, p.attribution} {
		if f != nil {
			_ = f.Close()
		}
	}
}

// chartSize is the chart's device size once fitted to the content width.
func (p *painter) chartSize() (int, int) {
	if p.l.Chart == nil {
		return 0, 0
	}
	b := p.l.Chart.Bounds()
	w := p.l.px(float64(p.l.ContentWidth()))
	if b.Dx() == 0 {
		return 0, 0
	}
	return w, b.Dy() * w / b.Dx()
}

func (p *painter) height() int {
	l := p.l
	h := l.px(float64(l.Padding))
	if l.Title != "" {
		h += l.px(titleSize*1.4) + l.px(gap)
	}
	if _, ch := p.chartSize(); ch > 0 {
		h += ch + l.px(gap)
	}
	if len(l.Table.Header) > 0 {
		cols := p.columns(l.px(float64(l.ContentWidth())))
		_, rh := p.rowLines(l.Table.Header, p.cellBold, cols)
		h += rh
		for _, r := range l.Table.Rows {
			_, rh := p.rowLines(r, p.cell, cols)
			h += rh
		}
		h += l.px(gap)
	}
	if l.Attribution != "" {
		h += l.px(attributionSize * 1.4)
	}
	return h + l.px(float64(l.Padding))
}

func (p *painter) paint(dst *image.RGBA) {
	l := p.l
	left := l.px(float64(l.Padding))
	width := l.px(float64(l.ContentWidth()))
	y := l.px(float64(l.Padding))

	if l.Title != "" {
		lh := l.px(titleSize * 1.4)
		drawText(dst, p.title, colorText, l.Title, left, y, width, lh, alignCenter)
		y += lh + l.px(gap)
	}

	if cw, ch := p.chartSize(); ch > 0 {
		rect := image.Rect(left, y, left+cw, y+ch)
		draw.CatmullRom.Scale(dst, rect, l.Chart, l.Chart.Bounds(), draw.Over, nil)
		y += ch + l.px(gap)
	}

	if len(l.Table.Header) > 0 {
		y = p.paintTable(dst, left, y, width)
		y += l.px(gap)
	}

	if l.Attribution != "" {
		drawText(dst, p.attribution, colorMuted, l.Attribution, left, y, width, l.px(attributionSize*1.4), alignCenter)
	}
}

func (p *painter) columns(width int) []int {
	n := len(p.l.Table.Header)
	cols := make([]int, n)
	if n == 1 {
		cols[0] = width
		return cols
	}
	first := width * 3 / 10
	rest := (width - first) / (n - 1)
	cols[0] = width - rest*(n-1)
	for i := 1; i < n; i++ {
		cols[i] = rest
	}
	return cols
}

// rowLines wraps every cell of a table row to its column and returns the
// lines per column with the row height that fits the tallest cell.
func (p *painter) rowLines(cells []string, face font.Face, cols []int) ([][]string, int) {
	l := p.l
	pad := l.px(cellPadding)
	d := &font.Drawer{Face: face}
	lines := make([][]string, len(cols))
	most := 1
	for i, w := range cols {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		lines[i] = wrapText(d, text, w-2*pad)
		most = max(most, len(lines[i]))
	}
	return lines, max(l.px(rowHeight), most*l.px(cellLine)+pad)
}

func (p *painter) paintTable(dst *image.RGBA, left, y, width int) int {
	l := p.l
	lh := l.px(cellLine)
	pad := l.px(cellPadding)
	cols := p.columns(width)
	line := max(1, l.px(1))

	paintRow := func(cells []string, face font.Face, bg color.Color) {
		lines, rh := p.rowLines(cells, face, cols)
		if bg != nil {
			draw.Draw(dst, image.Rect(left, y, left+width, y+rh), image.NewUniform(bg), image.Point{}, draw.Src)
		}
		x := left
		for i, w := range cols {
			align := alignCenter
			if i == 0 {
				align = alignLeft
			}
			top := y + (rh-len(lines[i])*lh)/2
			for j, text := range lines[i] {
				drawText(dst, face, colorText, text, x+pad, top+j*lh, w-2*pad, lh, align)
			}
			x += w
		}
		fillRect(dst, image.Rect(left, y+rh-line, left+width, y+rh), colorBorder)
		y += rh
	}

	top := y
	paintRow(l.Table.Header, p.cellBold, colorHeadBg)
	for _, r := range l.Table.Rows {
		paintRow(r, p.cell, nil)
	}

	// Outer frame and column separators.
	fillRect(dst, image.Rect(left, top, left+width, top+line), colorBorder)
	x := left
	for _, w := range cols {
		fillRect(dst, image.Rect(x, top, x+line, y), colorBorder)
		x += w
	}
	fillRect(dst, image.Rect(left+width-line, top, left+width, y), colorBorder)
	return y
}

type align int

const (
	alignLeft align = iota
	alignCenter
)

// drawText draws s vertically centred in the box at (x, y) of size w×h,
// cutting it with an ellipsis when it does not fit. Table cells are wrapped
// with wrapText first so they always fit.
func drawText(dst draw.Image, face font.Face, c color.Color, s string, x, y, w, h int, a align) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	s = fit(d, s, w)
	adv := d.MeasureString(s).Ceil()

	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	baseline := y + (h+ascent-descent)/2

	if a == alignCenter {
		x += (w - adv) / 2
	}
	d.Dot = fixed.P(x, baseline)
	d.DrawString(s)
}

func fit(d *font.Drawer, s string, w int) string {
	if d.MeasureString(s).Ceil() <= w {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		cut := string(runes[:n]) + chart.Ellipsis
		if d.MeasureString(cut).Ceil() <= w {
			return cut
		}
	}
	return ""
}

// wrapText breaks s at spaces into lines no wider than w. A single word
// wider than w is split between runes.
func wrapText(d *font.Drawer, s string, w int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || w <= 0 {
		return []string{s}
	}

	var lines []string
	cur := ""
	for _, word := range words {
		for _, part := range splitWord(d, word, w) {
			if cur == "" {
				cur = part
				continue
			}
			if next := cur + " " + part; d.MeasureString(next).Ceil() <= w {
				cur = next
				continue
			}
			lines = append(lines, cur)
			cur = part
		}
	}
	return append(lines, cur)
}

func splitWord(d *font.Drawer, word string, w int) []string {
	if d.MeasureString(word).Ceil() <= w {
		return []string{word}
	}
	var parts []string
	var chunk []rune
	for _, r := range word {
		if len(chunk) > 0 && d.MeasureString(string(append(chunk, r))).Ceil() > w {
			parts = append(parts, string(chunk))
			chunk = nil
		}
		chunk = append(chunk, r)
	}
	return append(parts, string(chunk))
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
