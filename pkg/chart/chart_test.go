package chart

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/labelplot/labelplot/pkg/dataset"
	"github.com/labelplot/labelplot/pkg/errors"
)

func modelDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Title:  "Model Speed vs Quality",
		XLabel: "Response Time (ms)",
		YLabel: "Quality Tier",
		Points: []dataset.Point{
			{Label: "llama-4-scout", X: 556, Y: 4},
			{Label: "gpt-4o-mini", X: 666, Y: 5},
			{Label: "claude-haiku", X: 612, Y: 5},
			{Label: "mistral-small", X: 701, Y: 3},
		},
	}
}

func TestBuildLayout(t *testing.T) {
	ds := modelDataset()
	l, err := Build(ds, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if l.Width != DefaultWidth || l.Height != DefaultHeight {
		t.Errorf("canvas = %vx%v", l.Width, l.Height)
	}
	if len(l.Markers) != 4 || len(l.Labels) != 4 {
		t.Fatalf("markers/labels = %d/%d, want 4/4", len(l.Markers), len(l.Labels))
	}
	if l.Title != ds.Title || l.XLabel != ds.XLabel || l.YLabel != ds.YLabel {
		t.Errorf("titles = %q/%q/%q", l.Title, l.XLabel, l.YLabel)
	}

	for _, m := range l.Markers {
		if m.X < l.Plot.Left || m.X > l.Plot.Right || m.Y < l.Plot.Top || m.Y > l.Plot.Bottom {
			t.Errorf("marker %d at (%v, %v) outside plot area", m.ID, m.X, m.Y)
		}
	}
}

func TestBuildLabelsReferenceMarkers(t *testing.T) {
	l, err := Build(modelDataset(), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Each solved box carries the string form of its marker's numeric ID, so
	// renderers can look the label text back up.
	ids := make(map[string]bool, len(l.Markers))
	for _, m := range l.Markers {
		ids[strconv.Itoa(m.ID)] = true
	}
	for _, b := range l.Labels {
		if !ids[b.AnchorID] {
			t.Errorf("label anchor %q has no matching marker", b.AnchorID)
		}
	}
}

func TestBuildClampsDisplacedLabelsToPlotArea(t *testing.T) {
	// No bounds supplied: Build fills them in from the plot rectangle. A
	// tight cluster forces every label to be displaced, and displaced boxes
	// are kept inside the plot.
	opts := DefaultOptions()
	if opts.Solver.Bounds.Valid() {
		t.Fatal("default solver config should carry no bounds")
	}

	// Identical coordinates put every marker at the plot center, so all
	// labels start stacked and have to be pushed apart.
	ds := &dataset.Dataset{Points: []dataset.Point{
		{Label: "first-crowded-label", X: 10, Y: 10},
		{Label: "second-crowded-label", X: 10, Y: 10},
		{Label: "third-crowded-label", X: 10, Y: 10},
		{Label: "fourth-crowded-label", X: 10, Y: 10},
		{Label: "fifth-crowded-label", X: 10, Y: 10},
	}}
	l, err := Build(ds, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, b := range l.Labels {
		if b.Left() < l.Plot.Left || b.Right() > l.Plot.Right ||
			b.Top() < l.Plot.Top || b.Bottom() > l.Plot.Bottom {
			t.Errorf("label %q box (%v, %v, %v, %v) escapes the plot area",
				b.AnchorID, b.Left(), b.Top(), b.Right(), b.Bottom())
		}
	}
}

func TestBuildTierAxis(t *testing.T) {
	l, err := Build(modelDataset(), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Y values 3, 4, 5 are integral, so the axis shows tiers.
	if len(l.YTicks) != 3 {
		t.Fatalf("got %d y ticks, want 3", len(l.YTicks))
	}
	for i, want := range []string{"Tier 3", "Tier 4", "Tier 5"} {
		if l.YTicks[i].Text != want {
			t.Errorf("y tick %d = %q, want %q", i, l.YTicks[i].Text, want)
		}
	}

	// One viridis color per tier; same tier, same color.
	colorByY := make(map[float64]string)
	for i, m := range l.Markers {
		y := modelDataset().Points[i].Y
		if prev, ok := colorByY[y]; ok && prev != m.Color {
			t.Errorf("tier %v has colors %q and %q", y, prev, m.Color)
		}
		colorByY[y] = m.Color
	}
	if len(colorByY) != 3 {
		t.Errorf("got %d distinct tier colors, want 3", len(colorByY))
	}
}

func TestBuildContinuousAxis(t *testing.T) {
	ds := &dataset.Dataset{Points: []dataset.Point{
		{Label: "a", X: 1, Y: 1.5},
		{Label: "b", X: 2, Y: 2.7},
	}}
	l, err := Build(ds, DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, tk := range l.YTicks {
		if strings.HasPrefix(tk.Text, "Tier") {
			t.Errorf("continuous axis rendered tier tick %q", tk.Text)
		}
	}
	for _, m := range l.Markers {
		if m.Color != DefaultMarkerColor {
			t.Errorf("marker color = %q, want %q", m.Color, DefaultMarkerColor)
		}
	}
}

func TestBuildEmptyDataset(t *testing.T) {
	_, err := Build(&dataset.Dataset{}, DefaultOptions())
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetCode(err) != errors.ErrCodeEmptyDataset {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeEmptyDataset)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l, err := Build(modelDataset(), DefaultOptions())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	data, err := l.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}

	if got.Width != l.Width || len(got.Markers) != len(l.Markers) || len(got.Labels) != len(l.Labels) {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Markers[0].Label != l.Markers[0].Label {
		t.Errorf("marker label = %q, want %q", got.Markers[0].Label, l.Markers[0].Label)
	}
}

func TestUnmarshalLayoutRejectsGarbage(t *testing.T) {
	if _, err := UnmarshalLayout([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if _, err := UnmarshalLayout([]byte("{}")); err == nil {
		t.Error("expected error for empty layout")
	}
}

func TestMeasureLabel(t *testing.T) {
	short := measureLabel("ab")
	long := measureLabel("a-much-longer-label")
	if long.Width <= short.Width {
		t.Errorf("long label width %v not greater than short %v", long.Width, short.Width)
	}
	if short.Height != long.Height {
		t.Errorf("heights differ: %v vs %v", short.Height, long.Height)
	}

	empty := measureLabel("")
	if empty.Width < minLabelWidth {
		t.Errorf("empty label width %v below minimum", empty.Width)
	}

	huge := strings.Repeat("x", 200)
	if got := truncateLabel(huge); len(got) != labelMaxLength {
		t.Errorf("truncated length = %d, want %d", len(got), labelMaxLength)
	}
}

func TestTruncateLabelMultibyte(t *testing.T) {
	long := strings.Repeat("é", 200)
	got := truncateLabel(long)

	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != labelMaxLength {
		t.Errorf("truncated rune count = %d, want %d", n, labelMaxLength)
	}
	if !strings.HasSuffix(got, "..") {
		t.Errorf("truncated label %q missing ellipsis", got)
	}

	short := "żółć"
	if truncateLabel(short) != short {
		t.Errorf("short multibyte label should be untouched")
	}
}
