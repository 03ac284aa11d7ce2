// Package cache provides pluggable caching for the labelplot pipeline.
//
// The pipeline caches three kinds of entries, each with its own TTL:
//   - parsed datasets, keyed by input content hash
//   - computed chart layouts, keyed by dataset hash plus layout options
//   - rendered artifacts, keyed by layout hash plus render options
//
// Backends:
//   - FileCache: XDG cache directory, used by the CLI
//   - RedisCache: shared cache for multi-instance server deployments
//   - MongoCache: document-store backend for server deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// TTLs per entry kind. Datasets are cheap to re-parse, so they expire first;
// rendered artifacts are the most expensive to recompute.
const (
	TTLDataset  = 1 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// =============================================================================
// Keyer
// =============================================================================

// DatasetKeyOpts are the options that affect dataset parsing.
type DatasetKeyOpts struct {
	LabelColumn string `json:"label_column,omitempty"`
	XColumn     string `json:"x_column,omitempty"`
	YColumn     string `json:"y_column,omitempty"`
}

// LayoutKeyOpts are the options that affect layout computation.
type LayoutKeyOpts struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	MaxIterations int     `json:"max_iterations"`
	ForceText     float64 `json:"force_text"`
	ForcePoints   float64 `json:"force_points"`
	ExpandText    float64 `json:"expand_text"`
	ExpandPoints  float64 `json:"expand_points"`
}

// ArtifactKeyOpts are the options that affect rendering.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Style  string  `json:"style"`
	Scale  float64 `json:"scale"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DatasetKey generates a key for a parsed dataset.
	DatasetKey(sourceHash string, opts DatasetKeyOpts) string

	// LayoutKey generates a key for a computed layout.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DatasetKey generates a key for a parsed dataset.
func (k *DefaultKeyer) DatasetKey(sourceHash string, opts DatasetKeyOpts) string {
	return hashKey("dataset", sourceHash, opts)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
