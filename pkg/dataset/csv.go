package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/labelplot/labelplot/pkg/errors"
)

// Columns is a resolved mapping from CSV columns to point fields.
type Columns struct {
	Label int // column index of the label
	X     int // column index of the x value
	Y     int // column index of the y value

	// Names of the matched header cells; empty for headerless input.
	LabelName string
	XName     string
	YName     string
}

// Overrides pins columns by header name, bypassing the heuristics.
// Empty fields keep the heuristic choice.
type Overrides struct {
	Label string
	X     string
	Y     string
}

// Column-name fragments recognized by the heuristics, checked in order.
var (
	labelHints = []string{"label", "name"}
	xHints     = []string{"x", "speed", "time"}
	yHints     = []string{"y", "quality", "tier"}
)

// DetectColumns maps a CSV header to point fields by substring match:
// label/name for the label column, x/speed/time for x, y/quality/tier for y.
// Columns 0, 1 and 2 are the positional fallback.
func DetectColumns(header []string) Columns {
	cols := Columns{Label: 0, X: 1, Y: 2}

	if i, ok := matchColumn(header, labelHints); ok {
		cols.Label = i
	}
	if i, ok := matchColumn(header, xHints); ok {
		cols.X = i
	}
	if i, ok := matchColumn(header, yHints); ok {
		cols.Y = i
	}

	if cols.Label < len(header) {
		cols.LabelName = header[cols.Label]
	}
	if cols.X < len(header) {
		cols.XName = header[cols.X]
	}
	if cols.Y < len(header) {
		cols.YName = header[cols.Y]
	}
	return cols
}

// ResolveColumns applies overrides on top of the heuristics. Override names
// must match a header cell exactly (case-insensitive).
func ResolveColumns(header []string, ov Overrides) (Columns, error) {
	cols := DetectColumns(header)

	apply := func(name string, idx *int, cellName *string) error {
		if name == "" {
			return nil
		}
		if err := errors.ValidateColumnName(name); err != nil {
			return err
		}
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				*idx = i
				*cellName = h
				return nil
			}
		}
		return errors.New(errors.ErrCodeInvalidColumn, "no such column: %q", name)
	}

	if err := apply(ov.Label, &cols.Label, &cols.LabelName); err != nil {
		return Columns{}, err
	}
	if err := apply(ov.X, &cols.X, &cols.XName); err != nil {
		return Columns{}, err
	}
	if err := apply(ov.Y, &cols.Y, &cols.YName); err != nil {
		return Columns{}, err
	}
	return cols, nil
}

// matchColumn returns the first header index containing any of the hints.
func matchColumn(header []string, hints []string) (int, bool) {
	for _, hint := range hints {
		for i, h := range header {
			if strings.Contains(strings.ToLower(h), hint) {
				return i, true
			}
		}
	}
	return 0, false
}

// ParseCSV decodes a CSV dataset. The first row is treated as a header
// unless its x and y cells already parse as numbers, in which case the
// input is headerless and the positional fallback applies.
func ParseCSV(data []byte, ov Overrides) (*Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse CSV")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyDataset, "CSV input is empty")
	}

	header := records[0]
	rows := records[1:]
	cols := Columns{Label: 0, X: 1, Y: 2}

	if headerless(header) {
		// No header row: all records are data.
		rows = records
		if ov != (Overrides{}) {
			return nil, errors.New(errors.ErrCodeInvalidColumn, "column overrides require a header row")
		}
	} else {
		cols, err = ResolveColumns(header, ov)
		if err != nil {
			return nil, err
		}
	}

	ds := &Dataset{
		XLabel: cols.XName,
		YLabel: cols.YName,
	}

	for i, rec := range rows {
		p, err := parseRecord(rec, cols)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "CSV row %d", i+1)
		}
		ds.Points = append(ds.Points, p)
	}

	ds.applyDefaults()
	return ds, nil
}

// headerless reports whether the first row looks like data rather than a
// header: its second and third cells parse as numbers.
func headerless(row []string) bool {
	if len(row) < 3 {
		return false
	}
	_, errX := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	_, errY := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	return errX == nil && errY == nil
}

// parseRecord extracts one point from a CSV record.
func parseRecord(rec []string, cols Columns) (Point, error) {
	maxIdx := cols.Label
	if cols.X > maxIdx {
		maxIdx = cols.X
	}
	if cols.Y > maxIdx {
		maxIdx = cols.Y
	}
	if len(rec) <= maxIdx {
		return Point{}, fmt.Errorf("expected at least %d columns, got %d", maxIdx+1, len(rec))
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(rec[cols.X]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("x value %q: %w", rec[cols.X], err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(rec[cols.Y]), 64)
	if err != nil {
		return Point{}, fmt.Errorf("y value %q: %w", rec[cols.Y], err)
	}

	return Point{
		Label: strings.TrimSpace(rec[cols.Label]),
		X:     x,
		Y:     y,
	}, nil
}
