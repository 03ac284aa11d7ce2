package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{name: "derive from input", output: "", input: "models.csv", want: "models"},
		{name: "stdin without output", output: "", input: "-", want: ""},
		{name: "output with format ext", output: "chart.svg", input: "models.csv", want: "chart"},
		{name: "output without ext", output: "out/chart", input: "models.csv", want: "out/chart"},
		{name: "output with unknown ext", output: "chart.data", input: "models.csv", want: "chart.data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFromOutput(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"chart.svg", "svg"},
		{"chart.png", "png"},
		{"chart.pdf", "pdf"},
		{"chart.json", "json"},
		{"chart.txt", ""},
		{"chart", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := formatFromOutput(tt.output); got != tt.want {
			t.Errorf("formatFromOutput(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}

func TestWriteArtifactsMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "chart")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"svg":  []byte("<svg/>"),
			"json": []byte("{}"),
		},
		formats: []string{"svg", "json"},
		input:   "models.csv",
		output:  base,
		quiet:   true,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if string(svg) != "<svg/>" {
		t.Errorf("svg content = %q", svg)
	}
	if _, err := os.ReadFile(base + ".json"); err != nil {
		t.Errorf("read json: %v", err)
	}
}

func TestWriteArtifactsSingleFormatAddsExtension(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "chart")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		input:     "models.csv",
		output:    out,
		quiet:     true,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	if _, err := os.Stat(out + ".svg"); err != nil {
		t.Errorf("expected %s.svg to exist: %v", out, err)
	}
}

func TestWriteArtifactsStdinNeedsOutput(t *testing.T) {
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": nil, "png": nil},
		formats:   []string{"svg", "png"},
		input:     "-",
	})
	if err == nil {
		t.Fatal("expected error for multiple formats from stdin without output")
	}
}
