// Package pipeline provides the core plotting pipeline for labelplot.
//
// This package implements the complete load → layout → render pipeline used
// by both the CLI and the HTTP server. Centralizing it keeps behavior
// consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and parse tabular point data (JSON or CSV)
//  2. Layout: Compose the chart and solve label placement
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "models.csv",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/labelplot/labelplot/pkg/cache"
	"github.com/labelplot/labelplot/pkg/chart"
	"github.com/labelplot/labelplot/pkg/chart/styles"
	"github.com/labelplot/labelplot/pkg/dataset"
	"github.com/labelplot/labelplot/pkg/errors"
	"github.com/labelplot/labelplot/pkg/label"
)

// Defaults shared by the CLI, server and config file.
const (
	DefaultWidth  = chart.DefaultWidth
	DefaultHeight = chart.DefaultHeight
	DefaultStyle  = styles.StyleDefault
	DefaultScale  = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options contains all configuration for the plotting pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Input       string `json:"input,omitempty"`        // file path, "-" for stdin
	InputFormat string `json:"input_format,omitempty"` // json or csv, empty = auto-detect
	LabelColumn string `json:"label_column,omitempty"`
	XColumn     string `json:"x_column,omitempty"`
	YColumn     string `json:"y_column,omitempty"`
	Title       string `json:"title,omitempty"`  // overrides dataset title
	XLabel      string `json:"xlabel,omitempty"` // overrides x axis label
	YLabel      string `json:"ylabel,omitempty"` // overrides y axis label
	Refresh     bool   `json:"refresh,omitempty"`

	// Layout options
	Width         float64 `json:"width,omitempty"`
	Height        float64 `json:"height,omitempty"`
	MaxIterations int     `json:"max_iterations,omitempty"` // 0 = default, negative = no relaxation
	ForceText     float64 `json:"force_text,omitempty"`
	ForcePoints   float64 `json:"force_points,omitempty"`
	ExpandText    float64 `json:"expand_text,omitempty"`
	ExpandPoints  float64 `json:"expand_points,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Scale   float64  `json:"scale,omitempty"` // PNG resolution multiplier

	// Runtime options (not serialized)
	Source []byte      `json:"-"` // raw input bytes; takes precedence over Input
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Dataset is the parsed input.
	Dataset *dataset.Dataset

	// DatasetHash is the content hash of the raw input.
	DatasetHash string

	// Layout is the composed chart with solved label positions.
	Layout *chart.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PointCount int
	Iterations int
	Converged  bool
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the parsed dataset came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := styles.Get(style)
	return err
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for the load stage.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" && len(o.Source) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "input path or source data is required")
	}
	if _, err := dataset.ParseFormat(o.InputFormat); err != nil {
		return err
	}
	for _, col := range []string{o.LabelColumn, o.XColumn, o.YColumn} {
		if col == "" {
			continue
		}
		if err := errors.ValidateColumnName(col); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "canvas dimensions must be positive")
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// SolverConfig translates the pipeline knobs into a solver configuration.
// Zero values keep the solver defaults; a negative MaxIterations disables
// relaxation entirely.
func (o *Options) SolverConfig() label.Config {
	cfg := label.DefaultConfig()
	if o.MaxIterations > 0 {
		cfg.MaxIterations = o.MaxIterations
	} else if o.MaxIterations < 0 {
		cfg.MaxIterations = 0
	}
	if o.ForceText > 0 {
		cfg.ForceText = o.ForceText
	}
	if o.ForcePoints > 0 {
		cfg.ForcePoints = o.ForcePoints
	}
	if o.ExpandText > 0 {
		cfg.ExpandText = o.ExpandText
	}
	if o.ExpandPoints > 0 {
		cfg.ExpandPoints = o.ExpandPoints
	}
	return cfg
}

// ColumnOverrides returns the CSV column overrides.
func (o *Options) ColumnOverrides() dataset.Overrides {
	return dataset.Overrides{
		Label: o.LabelColumn,
		X:     o.XColumn,
		Y:     o.YColumn,
	}
}

// DatasetKeyOpts returns cache key options for dataset parsing.
func (o *Options) DatasetKeyOpts() cache.DatasetKeyOpts {
	return cache.DatasetKeyOpts{
		LabelColumn: o.LabelColumn,
		XColumn:     o.XColumn,
		YColumn:     o.YColumn,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	cfg := o.SolverConfig()
	return cache.LayoutKeyOpts{
		Width:         o.Width,
		Height:        o.Height,
		MaxIterations: cfg.MaxIterations,
		ForceText:     cfg.ForceText,
		ForcePoints:   cfg.ForcePoints,
		ExpandText:    cfg.ExpandText,
		ExpandPoints:  cfg.ExpandPoints,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Scale:  o.Scale,
	}
}
