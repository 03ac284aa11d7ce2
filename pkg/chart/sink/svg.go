package sink

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/labelplot/labelplot/pkg/chart"
	"github.com/labelplot/labelplot/pkg/chart/styles"
)

const (
	titleFontSize = 20.0
	axisFontSize  = 14.0
	tickGap       = 8.0 // space between the plot frame and tick text
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
}

// WithStyle overrides the style recorded in the layout.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// RenderSVG draws the layout as an SVG document. The style comes from the
// layout's Style field unless overridden; an unknown recorded style falls
// back to the default.
func RenderSVG(l *chart.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		s, err := styles.Get(l.Style)
		if err != nil {
			s, _ = styles.Get("")
		}
		r.style = s
	}

	canvas := styles.Canvas{
		Width: l.Width, Height: l.Height,
		PlotLeft: l.Plot.Left, PlotTop: l.Plot.Top,
		PlotRight: l.Plot.Right, PlotBottom: l.Plot.Bottom,
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	r.style.RenderBackground(&buf, canvas)
	renderGrid(&buf, r.style, l)
	renderConnectors(&buf, r.style, l)
	renderMarkers(&buf, r.style, l)
	renderLabels(&buf, r.style, l)
	renderAxes(&buf, r.style, l)
	renderTitles(&buf, r.style, l)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderGrid(buf *bytes.Buffer, s styles.Style, l *chart.Layout) {
	for _, t := range l.XTicks {
		s.RenderGridLine(buf, t.Pixel, l.Plot.Top, t.Pixel, l.Plot.Bottom)
	}
	for _, t := range l.YTicks {
		s.RenderGridLine(buf, l.Plot.Left, t.Pixel, l.Plot.Right, t.Pixel)
	}
}

// renderConnectors draws anchor-to-label lines underneath markers and boxes
// so the line never crosses its own label text.
func renderConnectors(buf *bytes.Buffer, s styles.Style, l *chart.Layout) {
	for _, c := range l.Connectors {
		s.RenderConnector(buf, c.X1, c.Y1, c.X2, c.Y2)
	}
}

func renderMarkers(buf *bytes.Buffer, s styles.Style, l *chart.Layout) {
	for _, m := range l.Markers {
		s.RenderMarker(buf, styles.Marker{X: m.X, Y: m.Y, Color: m.Color})
	}
}

func renderLabels(buf *bytes.Buffer, s styles.Style, l *chart.Layout) {
	text := make(map[string]string, len(l.Markers))
	for _, m := range l.Markers {
		text[strconv.Itoa(m.ID)] = m.Label
	}
	for _, b := range l.Labels {
		s.RenderLabel(buf, styles.Label{
			X: b.X, Y: b.Y,
			Width: b.Width, Height: b.Height,
			Text: text[b.AnchorID],
		})
	}
}

func renderAxes(buf *bytes.Buffer, s styles.Style, l *chart.Layout) {
	for _, t := range l.XTicks {
		s.RenderTickText(buf, styles.TickText{
			X: t.Pixel, Y: l.Plot.Bottom + tickGap + 11,
			Text: t.Text, Anchor: "middle",
		})
	}
	for _, t := range l.YTicks {
		s.RenderTickText(buf, styles.TickText{
			X: l.Plot.Left - tickGap, Y: t.Pixel + 4,
			Text: t.Text, Anchor: "end",
		})
	}
}

func renderTitles(buf *bytes.Buffer, s styles.Style, l *chart.Layout) {
	centerX := (l.Plot.Left + l.Plot.Right) / 2
	centerY := (l.Plot.Top + l.Plot.Bottom) / 2

	if l.Title != "" {
		s.RenderTitle(buf, styles.Title{
			X: centerX, Y: l.Plot.Top - 30,
			Text: l.Title, Size: titleFontSize,
		})
	}
	if l.XLabel != "" {
		s.RenderTitle(buf, styles.Title{
			X: centerX, Y: l.Height - 25,
			Text: l.XLabel, Size: axisFontSize,
		})
	}
	if l.YLabel != "" {
		s.RenderTitle(buf, styles.Title{
			X: 28, Y: centerY,
			Text: l.YLabel, Size: axisFontSize, Rotate: true,
		})
	}
}
