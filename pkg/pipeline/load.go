package pipeline

import (
	"io"
	"os"

	"github.com/labelplot/labelplot/pkg/dataset"
	"github.com/labelplot/labelplot/pkg/errors"
)

// readSource returns the raw input bytes. Precedence: Source bytes, stdin
// when Input is "-", then the Input path.
func readSource(opts Options) ([]byte, error) {
	if len(opts.Source) > 0 {
		return opts.Source, nil
	}
	if opts.Input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %q", opts.Input)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %q", opts.Input)
	}
	return data, nil
}

// loadDataset parses raw bytes into a dataset. Metadata overrides are not
// applied here; the runner reapplies them after caching so the cached entry
// stays override-free.
func loadDataset(data []byte, opts Options) (*dataset.Dataset, error) {
	format, err := dataset.ParseFormat(opts.InputFormat)
	if err != nil {
		return nil, err
	}
	if format == "" && opts.Input != "" && opts.Input != "-" {
		format = dataset.DetectFormat(opts.Input, data)
	}
	return dataset.Parse(data, format, opts.ColumnOverrides())
}

// applyOverrides replaces dataset metadata with explicit pipeline options.
func applyOverrides(ds *dataset.Dataset, opts Options) {
	if opts.Title != "" {
		ds.Title = opts.Title
	}
	if opts.XLabel != "" {
		ds.XLabel = opts.XLabel
	}
	if opts.YLabel != "" {
		ds.YLabel = opts.YLabel
	}
}
