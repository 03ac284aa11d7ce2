package dataset

import (
	"github.com/labelplot/labelplot/pkg/errors"
)

// DefaultTitle is used when the input carries no title of its own.
const DefaultTitle = "Scatter Plot"

// Point is one labeled data point.
type Point struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Dataset is the parsed input: the points plus chart metadata.
type Dataset struct {
	Title  string  `json:"title,omitempty"`
	XLabel string  `json:"xlabel,omitempty"`
	YLabel string  `json:"ylabel,omitempty"`
	Points []Point `json:"points"`
}

// Validate checks that the dataset can produce a chart.
func (d *Dataset) Validate() error {
	if len(d.Points) == 0 {
		return errors.New(errors.ErrCodeEmptyDataset, "dataset contains no points")
	}
	return nil
}

// applyDefaults fills metadata the input left empty.
func (d *Dataset) applyDefaults() {
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	if d.XLabel == "" {
		d.XLabel = "X"
	}
	if d.YLabel == "" {
		d.YLabel = "Y"
	}
}

// XRange returns the minimum and maximum x values.
// Both are zero for an empty dataset.
func (d *Dataset) XRange() (float64, float64) {
	if len(d.Points) == 0 {
		return 0, 0
	}
	lo, hi := d.Points[0].X, d.Points[0].X
	for _, p := range d.Points[1:] {
		if p.X < lo {
			lo = p.X
		}
		if p.X > hi {
			hi = p.X
		}
	}
	return lo, hi
}

// YRange returns the minimum and maximum y values.
// Both are zero for an empty dataset.
func (d *Dataset) YRange() (float64, float64) {
	if len(d.Points) == 0 {
		return 0, 0
	}
	lo, hi := d.Points[0].Y, d.Points[0].Y
	for _, p := range d.Points[1:] {
		if p.Y < lo {
			lo = p.Y
		}
		if p.Y > hi {
			hi = p.Y
		}
	}
	return lo, hi
}

// DiscreteTiers returns the sorted distinct y values when the y axis looks
// like a discrete tier scale (at most maxTiers distinct integral values),
// or nil when the axis is continuous.
func (d *Dataset) DiscreteTiers(maxTiers int) []float64 {
	seen := make(map[float64]bool)
	var tiers []float64
	for _, p := range d.Points {
		if p.Y != float64(int64(p.Y)) {
			return nil
		}
		if !seen[p.Y] {
			seen[p.Y] = true
			tiers = append(tiers, p.Y)
		}
		if len(tiers) > maxTiers {
			return nil
		}
	}
	sortFloats(tiers)
	return tiers
}

// sortFloats sorts in place, ascending. Tier lists are tiny; insertion sort
// avoids pulling in a comparison adapter.
func sortFloats(v []float64) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}
