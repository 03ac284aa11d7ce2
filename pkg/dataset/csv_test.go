package dataset

import (
	"testing"

	"github.com/labelplot/labelplot/pkg/errors"
)

func TestDetectColumns(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   Columns
	}{
		{
			name:   "canonical names",
			header: []string{"label", "x", "y"},
			want:   Columns{Label: 0, X: 1, Y: 2},
		},
		{
			name:   "domain names",
			header: []string{"name", "speed_ms", "quality"},
			want:   Columns{Label: 0, X: 1, Y: 2},
		},
		{
			name:   "shuffled order",
			header: []string{"tier", "model_name", "response_time"},
			want:   Columns{Label: 1, X: 2, Y: 0},
		},
		{
			name:   "no matches fall back to position",
			header: []string{"a", "b", "c"},
			want:   Columns{Label: 0, X: 1, Y: 2},
		},
		{
			name:   "case insensitive",
			header: []string{"Label", "Time", "Tier"},
			want:   Columns{Label: 0, X: 1, Y: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectColumns(tt.header)
			if got.Label != tt.want.Label || got.X != tt.want.X || got.Y != tt.want.Y {
				t.Errorf("DetectColumns = %d/%d/%d, want %d/%d/%d",
					got.Label, got.X, got.Y, tt.want.Label, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestResolveColumnsOverrides(t *testing.T) {
	header := []string{"model", "latency", "score"}

	cols, err := ResolveColumns(header, Overrides{X: "score", Y: "latency"})
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}
	if cols.X != 2 || cols.Y != 1 {
		t.Errorf("overridden X/Y = %d/%d, want 2/1", cols.X, cols.Y)
	}
	if cols.XName != "score" || cols.YName != "latency" {
		t.Errorf("matched names = %q/%q", cols.XName, cols.YName)
	}

	_, err = ResolveColumns(header, Overrides{Label: "missing"})
	if err == nil {
		t.Fatal("expected error for unknown column")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidColumn {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidColumn)
	}
}

func TestParseCSVWithHeader(t *testing.T) {
	input := "name,speed_ms,quality_tier\nllama-4-scout,556,4\ngpt-4o-mini,666,5\n"

	ds, err := ParseCSV([]byte(input), Overrides{})
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(ds.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(ds.Points))
	}
	if ds.Points[1].Label != "gpt-4o-mini" || ds.Points[1].X != 666 || ds.Points[1].Y != 5 {
		t.Errorf("point 1 = %+v", ds.Points[1])
	}
	// Axis labels come from the matched header cells.
	if ds.XLabel != "speed_ms" || ds.YLabel != "quality_tier" {
		t.Errorf("axis labels = %q/%q", ds.XLabel, ds.YLabel)
	}
	if ds.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", ds.Title, DefaultTitle)
	}
}

func TestParseCSVHeaderless(t *testing.T) {
	input := "alpha,1.5,2\nbeta,3,4.5\n"

	ds, err := ParseCSV([]byte(input), Overrides{})
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(ds.Points) != 2 {
		t.Fatalf("got %d points, want 2", len(ds.Points))
	}
	if ds.Points[0].Label != "alpha" || ds.Points[0].X != 1.5 || ds.Points[0].Y != 2 {
		t.Errorf("point 0 = %+v", ds.Points[0])
	}
	// No header, so axis labels fall back to the generic defaults.
	if ds.XLabel != "X" || ds.YLabel != "Y" {
		t.Errorf("axis labels = %q/%q, want X/Y", ds.XLabel, ds.YLabel)
	}
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ov    Overrides
		code  errors.Code
	}{
		{"empty input", "", Overrides{}, errors.ErrCodeEmptyDataset},
		{"non numeric x", "label,x,y\na,fast,2\n", Overrides{}, errors.ErrCodeInvalidInput},
		{"short row", "label,x,y\na,1\n", Overrides{}, errors.ErrCodeInvalidInput},
		{"override without header", "a,1,2\n", Overrides{X: "x"}, errors.ErrCodeInvalidColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV([]byte(tt.input), tt.ov)
			if err == nil {
				t.Fatal("expected error")
			}
			if errors.GetCode(err) != tt.code {
				t.Errorf("code = %q, want %q", errors.GetCode(err), tt.code)
			}
		})
	}
}
