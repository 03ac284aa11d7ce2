package dataset

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labelplot/labelplot/pkg/errors"
)

// Format is a supported input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat parses a user-supplied format name. The empty string means
// auto-detect.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown input format %q (expected json or csv)", s)
	}
}

// DetectFormat picks the input format from the file extension, falling back
// to content sniffing: data that parses as JSON is JSON, anything else is
// treated as CSV.
func DetectFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	}
	return sniffFormat(data)
}

// sniffFormat classifies raw bytes. CSV is the fallback because almost any
// text decodes as CSV.
func sniffFormat(data []byte) Format {
	var doc any
	if err := json.Unmarshal(data, &doc); err == nil {
		return FormatJSON
	}
	return FormatCSV
}

// Parse decodes raw bytes in the given format. An empty format sniffs.
func Parse(data []byte, format Format, ov Overrides) (*Dataset, error) {
	if format == "" {
		format = sniffFormat(data)
	}
	switch format {
	case FormatJSON:
		if ov != (Overrides{}) {
			return nil, errors.New(errors.ErrCodeInvalidColumn, "column overrides only apply to CSV input")
		}
		return ParseJSON(data)
	case FormatCSV:
		return ParseCSV(data, ov)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown input format %q", format)
	}
}

// Load reads a dataset from a file. "-" reads stdin. An empty format is
// detected from the extension and content.
func Load(path string, format Format, ov Overrides) (*Dataset, error) {
	if path == "-" {
		return LoadReader(os.Stdin, format, ov)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %q", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %q", path)
	}

	if format == "" {
		format = DetectFormat(path, data)
	}
	return Parse(data, format, ov)
}

// LoadReader reads a dataset from a stream. There is no file name to go by,
// so an empty format always sniffs the content.
func LoadReader(r io.Reader, format Format, ov Overrides) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read input stream")
	}
	return Parse(data, format, ov)
}
