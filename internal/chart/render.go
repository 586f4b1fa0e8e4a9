package chart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// baseDPI is go-chart's default resolution; scaling multiplies it so text
// grows with the image.
const baseDPI = 92.0

// labelRotation slants factor labels by 45°. go-chart anchors rotated tick
// text at its start, so the labels hang below the axis going right; a
// negative angle would run them up into the plot.
const labelRotation = 45.0

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("chart needs at least one factor and one competitor")

// Renderer rasterizes chart rows with go-chart.
type Renderer struct {
	// Width and Height are logical pixels; the image is Scale times larger.
	Width  int
	Height int
	Scale  float64
}

// NewRenderer returns a renderer with the given logical size and scale.
func NewRenderer(width, height int, scale float64) *Renderer {
	return &Renderer{Width: width, Height: height, Scale: scale}
}

func (r *Renderer) scale() float64 {
	if r.Scale <= 0 {
		return 1
	}
	return r.Scale
}

func (r *Renderer) px(v float64) int {
	return int(v * r.scale())
}

// Chart builds the go-chart definition without rendering it.
func (r *Renderer) Chart(rows []Row, series []Series) (gochart.Chart, error) {
	if len(rows) == 0 || len(series) == 0 {
		return gochart.Chart{}, ErrNoData
	}
	s := r.scale()

	n := len(rows)
	xs := make([]float64, n)
	xTicks := make([]gochart.Tick, n)
	for i, row := range rows {
		xs[i] = float64(i + 1)
		xTicks[i] = gochart.Tick{Value: xs[i], Label: row.Label}
	}

	yTicks := make([]gochart.Tick, 0, 6)
	for v := 0; v <= 5; v++ {
		yTicks = append(yTicks, gochart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}

	grid := gochart.Style{
		StrokeColor:     drawing.Color{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff},
		StrokeWidth:     1 * s,
		StrokeDashArray: []float64{3 * s, 3 * s},
	}

	lines := make([]gochart.Series, 0, len(series))
	for i, sr := range series {
		ys := make([]float64, n)
		for j, row := range rows {
			if i < len(row.Values) {
				ys[j] = float64(row.Values[i])
			}
		}
		c, err := ParseHex(sr.Color)
		if err != nil {
			return gochart.Chart{}, err
		}
		col := drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
		lines = append(lines, gochart.ContinuousSeries{
			Name:    sr.Name,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: col,
				StrokeWidth: 2 * s,
				DotColor:    col,
				DotWidth:    4 * s,
			},
		})
	}

	ch := gochart.Chart{
		Width:  r.px(float64(r.Width)),
		Height: r.px(float64(r.Height)),
		DPI:    baseDPI * s,
		Background: gochart.Style{
			FillColor: drawing.ColorWhite,
			Padding:   gochart.Box{Top: r.px(20), Left: r.px(20), Right: r.px(30), Bottom: r.px(20)},
		},
		Canvas: gochart.Style{FillColor: drawing.ColorWhite},
		XAxis: gochart.XAxis{
			Ticks:          xTicks,
			Range:          &gochart.ContinuousRange{Min: 0.5, Max: float64(n) + 0.5},
			TickStyle:      gochart.Style{TextRotationDegrees: labelRotation},
			GridMajorStyle: grid,
		},
		YAxis: gochart.YAxis{
			Ticks:          yTicks,
			Range:          &gochart.ContinuousRange{Min: 0, Max: 5},
			GridMajorStyle: grid,
		},
		Series: lines,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return ch, nil
}

// RenderPNG writes the chart as PNG to w.
func (r *Renderer) RenderPNG(w io.Writer, rows []Row, series []Series) error {
	ch, err := r.Chart(rows, series)
	if err != nil {
		return err
	}
	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// Render rasterizes the chart into an image. The context is checked before
// work starts; go-chart itself cannot be interrupted.
func (r *Renderer) Render(ctx context.Context, rows []Row, series []Series) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := r.RenderPNG(&buf, rows, series); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}
