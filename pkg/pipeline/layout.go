package pipeline

import (
	"github.com/labelplot/labelplot/pkg/chart"
	"github.com/labelplot/labelplot/pkg/dataset"
)

// buildLayout composes the chart for a dataset with the pipeline's layout
// options.
func buildLayout(ds *dataset.Dataset, opts Options) (*chart.Layout, error) {
	return chart.Build(ds, chart.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Style:  opts.Style,
		Solver: opts.SolverConfig(),
	})
}
