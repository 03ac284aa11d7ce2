package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labelplot/labelplot/pkg/errors"
	"github.com/labelplot/labelplot/pkg/pipeline"
)

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., models.svg, models.png).
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return ""
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// formatFromOutput infers the output format from the output file extension.
// Returns "" when the extension is missing or unknown.
func formatFromOutput(output string) string {
	format := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[format] {
		return format
	}
	return ""
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// artifactWriteParams bundles everything writeArtifacts needs.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string // input path, used to derive file names
	output    string // output file or base path
	cacheHit  bool
	quiet     bool // suppress status lines (stdout artifact mode)
}

// writeArtifacts writes rendered artifacts to files, or to stdout when a
// single format was requested without an output path.
func writeArtifacts(p artifactWriteParams) error {
	if len(p.formats) == 1 {
		return writeSingleArtifact(p, p.formats[0])
	}

	base := basePath(p.output, p.input)
	if base == "" {
		return fmt.Errorf("multiple formats need --output when reading from stdin")
	}

	for _, format := range p.formats {
		path := base + "." + format
		if err := writeFile(path, p.artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	if !p.quiet {
		printSuccess("Wrote %d files", len(p.formats))
	}
	return nil
}

// writeSingleArtifact writes one artifact. An empty output path streams the
// artifact to stdout with no decoration.
func writeSingleArtifact(p artifactWriteParams, format string) error {
	data := p.artifacts[format]

	if p.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	path := p.output
	if filepath.Ext(path) == "" {
		path += "." + format
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	if !p.quiet {
		printFile(path)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}

	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
