// Package styles defines the visual appearance of rendered charts.
//
// A Style turns layout geometry into SVG fragments: background and grid,
// markers, connectors, label boxes and axis text. Styles are selected by
// name; Get validates the name against the registry.
package styles

import (
	"bytes"
	"encoding/xml"

	"github.com/labelplot/labelplot/pkg/errors"
)

// Style renders the visual pieces of a chart into an SVG buffer.
type Style interface {
	// Name returns the registry name of the style.
	Name() string
	// RenderBackground writes the canvas background and plot frame.
	RenderBackground(buf *bytes.Buffer, c Canvas)
	// RenderGridLine writes one grid line across the plot area.
	RenderGridLine(buf *bytes.Buffer, x1, y1, x2, y2 float64)
	// RenderMarker writes a single data point marker.
	RenderMarker(buf *bytes.Buffer, m Marker)
	// RenderConnector writes the anchor-to-label connector line.
	RenderConnector(buf *bytes.Buffer, x1, y1, x2, y2 float64)
	// RenderLabel writes a label box with its text.
	RenderLabel(buf *bytes.Buffer, l Label)
	// RenderTickText writes one axis tick label.
	RenderTickText(buf *bytes.Buffer, t TickText)
	// RenderTitle writes the chart title or an axis title.
	RenderTitle(buf *bytes.Buffer, t Title)
}

// Canvas carries the frame geometry every style needs.
type Canvas struct {
	Width, Height         float64
	PlotLeft, PlotTop     float64
	PlotRight, PlotBottom float64
}

// Marker is one data point to draw.
type Marker struct {
	X, Y  float64
	Color string
}

// Label is one label box with centered text.
type Label struct {
	X, Y          float64 // center
	Width, Height float64
	Text          string
}

// TickText is one axis tick label.
type TickText struct {
	X, Y   float64
	Text   string
	Anchor string // SVG text-anchor: start, middle, end
}

// Title is the chart title or an axis title.
type Title struct {
	X, Y   float64
	Text   string
	Size   float64
	Rotate bool // vertical y-axis title
}

// Names of the built-in styles.
const (
	StyleDefault = "default"
	StyleDark    = "dark"
)

// Get returns the style registered under name. The empty string selects the
// default style.
func Get(name string) (Style, error) {
	switch name {
	case "", StyleDefault:
		return Default{}, nil
	case StyleDark:
		return Dark{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (expected default or dark)", name)
	}
}

// Names lists the registered style names.
func Names() []string {
	return []string{StyleDefault, StyleDark}
}

// EscapeXML escapes text for embedding in SVG attributes and content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
