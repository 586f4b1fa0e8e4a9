// Package export renders a canvas to a PNG: the chart, a data table and a
// title composed on an off-screen layout.
//
// An export runs two stages in order, chart rasterization then layout
// rasterization, and is never retried. It works on a copy of the canvas, so
// the caller's state is the same afterwards whether it succeeds or fails.
package export

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"time"

	"github.com/google/uuid"

	"github.com/dbmrq/strategycanvas/internal/canvas"
	"github.com/dbmrq/strategycanvas/internal/chart"
	"github.com/dbmrq/strategycanvas/internal/config"
	apperrors "github.com/dbmrq/strategycanvas/internal/errors"
	"github.com/dbmrq/strategycanvas/internal/logging"
)

// Export stages, reported in failure details.
const (
	StageChart  = "chart"
	StageLayout = "layout"
	StageEncode = "encode"
	StageWrite  = "write"
)

// Options controls the exported image.
type Options struct {
	Title       string
	Attribution string
	FileName    string
	Width       int
	Padding     int
	ChartHeight int
	Scale       float64
	Timeout     time.Duration
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return OptionsFromConfig(config.NewConfig().Export)
}

// OptionsFromConfig converts the export section of the configuration.
func OptionsFromConfig(c config.ExportConfig) Options {
	return Options{
		Title:       c.Title,
		Attribution: c.Attribution,
		FileName:    c.FileName,
		Width:       c.Width,
		Padding:     DefaultPadding,
		ChartHeight: c.ChartHeight,
		Scale:       c.Scale,
		Timeout:     c.Timeout,
	}
}

// Result describes a finished export.
type Result struct {
	ID     string
	Path   string
	Width  int
	Height int
	Bytes  int
}

// Exporter produces PNG images of a canvas.
type Exporter struct {
	opts       Options
	rasterizer Rasterizer
	sink       Sink
	logger     *logging.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithRasterizer replaces the default x/image rasterizer.
func WithRasterizer(r Rasterizer) Option {
	return func(e *Exporter) { e.rasterizer = r }
}

// WithLogger sets the logger. The global logger is used otherwise.
func WithLogger(l *logging.Logger) Option {
	return func(e *Exporter) { e.logger = l }
}

// New creates an Exporter delivering to sink.
func New(opts Options, sink Sink, options ...Option) *Exporter {
	e := &Exporter{opts: opts, sink: sink}
	for _, o := range options {
		o(e)
	}
	if e.rasterizer == nil {
		e.rasterizer = NewImageRasterizer(opts.Width-2*opts.Padding, opts.ChartHeight, opts.Scale)
	}
	if e.logger == nil {
		e.logger = logging.Global()
	}
	return e
}

// Export renders s and hands the PNG to the sink. On failure the error is
// logged and returned as an ErrExport error carrying the failed stage.
func (e *Exporter) Export(ctx context.Context, s *canvas.State) (Result, error) {
	snap := s.Clone()
	res := Result{ID: uuid.NewString()}

	ctx = logging.WithExportID(ctx, res.ID)
	log := e.logger.WithContext(ctx)
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	started := time.Now()
	log.Info("export started",
		"factors", len(snap.ValidFactors()),
		"competitors", len(snap.ValidCompetitors()))

	fail := func(stage string, err error) (Result, error) {
		log.Error("export failed", "stage", stage, "error", err)
		return Result{}, apperrors.ExportFailed(stage, err)
	}

	chartImg, err := e.rasterizer.RasterizeChart(ctx, chart.Project(snap), chart.SeriesOf(snap))
	if err != nil {
		return fail(StageChart, err)
	}

	layout := e.layout(snap, chartImg)
	defer layout.Dispose()

	img, err := e.rasterizer.RasterizeLayout(ctx, layout)
	if err != nil {
		return fail(StageLayout, err)
	}

	data, err := encode(img)
	if err != nil {
		return fail(StageEncode, err)
	}

	path, err := e.sink.Deliver(ctx, e.fileName(), data)
	if err != nil {
		return fail(StageWrite, err)
	}

	b := img.Bounds()
	res.Path = path
	res.Width = b.Dx()
	res.Height = b.Dy()
	res.Bytes = len(data)

	log.Info("export finished",
		"path", path,
		"width", res.Width,
		"height", res.Height,
		"bytes", res.Bytes,
		"duration", time.Since(started))
	return res, nil
}

func (e *Exporter) layout(s *canvas.State, chartImg image.Image) *Layout {
	l := NewLayout(e.opts.Title, chartImg, NewTable(s), e.opts.Attribution)
	if e.opts.Width > 0 {
		l.Width = e.opts.Width
	}
	if e.opts.Padding > 0 {
		l.Padding = e.opts.Padding
	}
	if e.opts.Scale > 0 {
		l.Scale = e.opts.Scale
	}
	return l
}

func (e *Exporter) fileName() string {
	if e.opts.FileName == "" {
		return config.DefaultFileName
	}
	return e.opts.FileName
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
