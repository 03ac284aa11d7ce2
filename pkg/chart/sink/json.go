package sink

import "github.com/labelplot/labelplot/pkg/chart"

// RenderJSON exports the layout as a pretty-printed JSON document. The
// document round-trips through chart.UnmarshalLayout, so saved layouts can
// be re-rendered to any other format without recomputing the label
// placement.
func RenderJSON(l *chart.Layout) ([]byte, error) {
	return l.Marshal()
}
