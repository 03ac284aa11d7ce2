package styles

import (
	"bytes"
	"fmt"
)

// Default is the light style: white canvas, gray grid, white label boxes
// with a thin border.
type Default struct{}

func (Default) Name() string { return StyleDefault }

func (Default) RenderBackground(buf *bytes.Buffer, c Canvas) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n",
		c.Width, c.Height)
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#cccccc" stroke-width="1"/>`+"\n",
		c.PlotLeft, c.PlotTop, c.PlotRight-c.PlotLeft, c.PlotBottom-c.PlotTop)
}

func (Default) RenderGridLine(buf *bytes.Buffer, x1, y1, x2, y2 float64) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#e6e6e6" stroke-width="1"/>`+"\n",
		x1, y1, x2, y2)
}

func (Default) RenderMarker(buf *bytes.Buffer, m Marker) {
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="5" fill="%s" stroke="#333333" stroke-width="0.8"/>`+"\n",
		m.X, m.Y, m.Color)
}

func (Default) RenderConnector(buf *bytes.Buffer, x1, y1, x2, y2 float64) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#888888" stroke-width="0.8"/>`+"\n",
		x1, y1, x2, y2)
}

func (Default) RenderLabel(buf *bytes.Buffer, l Label) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="#ffffff" fill-opacity="0.85" stroke="#bbbbbb" stroke-width="0.6"/>`+"\n",
		l.X-l.Width/2, l.Y-l.Height/2, l.Width, l.Height)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" fill="#222222" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		l.X, l.Y, EscapeXML(l.Text))
}

func (Default) RenderTickText(buf *bytes.Buffer, t TickText) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="#444444" text-anchor="%s">%s</text>`+"\n",
		t.X, t.Y, t.Anchor, EscapeXML(t.Text))
}

func (Default) RenderTitle(buf *bytes.Buffer, t Title) {
	transform := ""
	if t.Rotate {
		transform = fmt.Sprintf(` transform="rotate(-90 %.1f %.1f)"`, t.X, t.Y)
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" fill="#222222" text-anchor="middle"%s>%s</text>`+"\n",
		t.X, t.Y, t.Size, transform, EscapeXML(t.Text))
}
