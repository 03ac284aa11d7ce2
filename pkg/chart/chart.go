package chart

import (
	"encoding/json"
	"strconv"

	"github.com/labelplot/labelplot/pkg/dataset"
	"github.com/labelplot/labelplot/pkg/errors"
	"github.com/labelplot/labelplot/pkg/label"
)

// Canvas defaults, chosen to match a 12x8 inch figure at 100 dpi.
const (
	DefaultWidth  = 1200.0
	DefaultHeight = 800.0
)

// Plot area margins inside the canvas.
const (
	marginLeft   = 90.0
	marginRight  = 40.0
	marginTop    = 70.0
	marginBottom = 80.0
)

// maxDiscreteTiers bounds how many distinct integral y values still count as
// a tier scale.
const maxDiscreteTiers = 10

// Options configures chart composition.
type Options struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Style  string       `json:"style,omitempty"`
	Solver label.Config `json:"solver"`
}

// DefaultOptions returns the canvas and solver defaults.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Solver: label.DefaultConfig(),
	}
}

// Marker is one data point mapped to pixel space.
type Marker struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Layout is a fully composed chart: everything a sink needs to draw it.
// It round-trips through JSON so layouts can be cached and re-rendered.
type Layout struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Style  string  `json:"style,omitempty"`

	Title  string `json:"title"`
	XLabel string `json:"xlabel"`
	YLabel string `json:"ylabel"`

	Plot   Rect  `json:"plot"`
	XScale Scale `json:"x_scale"`
	YScale Scale `json:"y_scale"`

	Markers    []Marker          `json:"markers"`
	Labels     []label.Box       `json:"labels"`
	Connectors []label.Connector `json:"connectors,omitempty"`
	XTicks     []Tick            `json:"x_ticks"`
	YTicks     []Tick            `json:"y_ticks"`

	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`
}

// Build composes a chart layout from a dataset: pixel scales, ticks, marker
// colors, and solver-placed label boxes.
func Build(ds *dataset.Dataset, opts Options) (*Layout, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	plot := Rect{
		Left:   marginLeft,
		Top:    marginTop,
		Right:  opts.Width - marginRight,
		Bottom: opts.Height - marginBottom,
	}

	xMin, xMax := ds.XRange()
	yMin, yMax := ds.YRange()
	xScale := NewScale(xMin, xMax, plot.Left, plot.Right)
	// Pixel y grows downward, so the scale is inverted.
	yScale := NewScale(yMin, yMax, plot.Bottom, plot.Top)

	tiers := ds.DiscreteTiers(maxDiscreteTiers)
	colors := tierColors(tiers)

	markers := make([]Marker, len(ds.Points))
	anchors := make([]label.Anchor, len(ds.Points))
	sizes := make([]label.Size, len(ds.Points))
	for i, p := range ds.Points {
		color := DefaultMarkerColor
		if c, ok := colors[p.Y]; ok {
			color = c
		}
		px, py := xScale.Pixel(p.X), yScale.Pixel(p.Y)
		markers[i] = Marker{ID: i, Label: truncateLabel(p.Label), X: px, Y: py, Color: color}
		anchors[i] = label.Anchor{ID: strconv.Itoa(i), X: px, Y: py}
		sizes[i] = measureLabel(p.Label)
	}

	cfg := opts.Solver
	if !cfg.Bounds.Valid() {
		cfg.Bounds = label.Bounds{
			MinX: plot.Left,
			MinY: plot.Top,
			MaxX: plot.Right,
			MaxY: plot.Bottom,
		}
	}
	res := label.Solve(anchors, sizes, cfg)

	var yTicks []Tick
	if len(tiers) > 0 {
		yTicks = tierTicks(yScale, tiers)
	} else {
		yTicks = niceTicks(yScale)
	}

	return &Layout{
		Width:      opts.Width,
		Height:     opts.Height,
		Style:      opts.Style,
		Title:      ds.Title,
		XLabel:     ds.XLabel,
		YLabel:     ds.YLabel,
		Plot:       plot,
		XScale:     xScale,
		YScale:     yScale,
		Markers:    markers,
		Labels:     res.Boxes,
		Connectors: res.Connectors,
		XTicks:     niceTicks(xScale),
		YTicks:     yTicks,
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}, nil
}

// Marshal encodes the layout as indented JSON.
func (l *Layout) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode layout")
	}
	return data, nil
}

// UnmarshalLayout decodes a layout document produced by Marshal.
func UnmarshalLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
	}
	if l.Width <= 0 || l.Height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "layout has no canvas dimensions")
	}
	return &l, nil
}
