package pipeline

import (
	"github.com/labelplot/labelplot/pkg/chart"
	"github.com/labelplot/labelplot/pkg/chart/sink"
	"github.com/labelplot/labelplot/pkg/chart/styles"
	"github.com/labelplot/labelplot/pkg/errors"
)

// RenderFromLayout renders a layout to every requested format. The style in
// opts wins over the style recorded in the layout, so cached layouts can be
// re-rendered with a different appearance.
func RenderFromLayout(l *chart.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	style, err := styles.Get(opts.Style)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(l, style, format, opts.Scale)
		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			return nil, errors.Wrap(code, err, "render %s", format)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(l *chart.Layout, style styles.Style, format string, scale float64) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(l, sink.WithStyle(style)), nil
	case FormatPNG:
		return sink.RenderPNG(l,
			sink.WithScale(scale),
			sink.WithPNGSVGOptions(sink.WithStyle(style)))
	case FormatPDF:
		return sink.RenderPDF(l, sink.WithPDFSVGOptions(sink.WithStyle(style)))
	case FormatJSON:
		return sink.RenderJSON(l)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}
