package styles

import (
	"bytes"
	"fmt"
)

// Dark is the dark style: near-black canvas with light text and muted grid.
type Dark struct{}

func (Dark) Name() string { return StyleDark }

func (Dark) RenderBackground(buf *bytes.Buffer, c Canvas) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#15181e"/>`+"\n",
		c.Width, c.Height)
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#3a3f4a" stroke-width="1"/>`+"\n",
		c.PlotLeft, c.PlotTop, c.PlotRight-c.PlotLeft, c.PlotBottom-c.PlotTop)
}

func (Dark) RenderGridLine(buf *bytes.Buffer, x1, y1, x2, y2 float64) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#262b33" stroke-width="1"/>`+"\n",
		x1, y1, x2, y2)
}

func (Dark) RenderMarker(buf *bytes.Buffer, m Marker) {
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="5" fill="%s" stroke="#e8e8e8" stroke-width="0.8"/>`+"\n",
		m.X, m.Y, m.Color)
}

func (Dark) RenderConnector(buf *bytes.Buffer, x1, y1, x2, y2 float64) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#6a7180" stroke-width="0.8"/>`+"\n",
		x1, y1, x2, y2)
}

func (Dark) RenderLabel(buf *bytes.Buffer, l Label) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="3" fill="#1f242d" fill-opacity="0.9" stroke="#4a5160" stroke-width="0.6"/>`+"\n",
		l.X-l.Width/2, l.Y-l.Height/2, l.Width, l.Height)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="12" fill="#e8e8e8" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		l.X, l.Y, EscapeXML(l.Text))
}

func (Dark) RenderTickText(buf *bytes.Buffer, t TickText) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="#aab0bc" text-anchor="%s">%s</text>`+"\n",
		t.X, t.Y, t.Anchor, EscapeXML(t.Text))
}

func (Dark) RenderTitle(buf *bytes.Buffer, t Title) {
	transform := ""
	if t.Rotate {
		transform = fmt.Sprintf(` transform="rotate(-90 %.1f %.1f)"`, t.X, t.Y)
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" fill="#e8e8e8" text-anchor="middle"%s>%s</text>`+"\n",
		t.X, t.Y, t.Size, transform, EscapeXML(t.Text))
}
