package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/labelplot/labelplot/pkg/errors"
)

//go:embed schema.json
var schemaJSON []byte

// datasetSchema is compiled once at startup. The schema is embedded, so a
// compile failure is a programming error.
var datasetSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	const url = "mem://labelplot/dataset.schema.json"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(url)
}

// ParseJSON decodes and validates a JSON dataset document.
func ParseJSON(data []byte) (*Dataset, error) {
	// Validate against the schema first for precise error locations.
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "input is not valid JSON")
	}
	if err := datasetSchema.Validate(doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "input does not match the dataset schema")
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode dataset")
	}

	ds.applyDefaults()
	return &ds, nil
}
