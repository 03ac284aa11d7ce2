package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/labelplot/labelplot/pkg/cache"
	"github.com/labelplot/labelplot/pkg/chart"
	"github.com/labelplot/labelplot/pkg/dataset"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	ds, sourceHash, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Dataset = ds
	result.DatasetHash = sourceHash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.PointCount = len(ds.Points)
	result.CacheInfo.LoadHit = loadHit

	r.Logger.Info("loaded dataset",
		"points", len(ds.Points),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	layout, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, ds, sourceHash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Iterations = layout.Iterations
	result.Stats.Converged = layout.Converged
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"labels", len(layout.Labels),
		"iterations", layout.Iterations,
		"converged", layout.Converged,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo reads and parses the input with caching. It returns the
// dataset, the content hash of the raw input, and whether the parse came
// from cache.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*dataset.Dataset, string, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, "", false, err
	}
	r.applyLogger(&opts)

	data, err := readSource(opts)
	if err != nil {
		return nil, "", false, err
	}
	sourceHash := cache.Hash(data)
	cacheKey := r.Keyer.DatasetKey(sourceHash, opts.DatasetKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var ds dataset.Dataset
			if err := json.Unmarshal(cached, &ds); err == nil {
				applyOverrides(&ds, opts)
				return &ds, sourceHash, true, nil // Cache hit
			}
		}
	}

	ds, err := loadDataset(data, opts)
	if err != nil {
		return nil, "", false, err
	}

	// Cache the parsed dataset without metadata overrides baked in; the
	// overrides are reapplied on every hit above.
	if cached, err := json.Marshal(ds); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, cached, cache.TTLDataset)
	}
	applyOverrides(ds, opts)

	return ds, sourceHash, false, nil // Cache miss
}

// Load is a convenience wrapper that discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (*dataset.Dataset, string, error) {
	ds, hash, _, err := r.LoadWithCacheInfo(ctx, opts)
	return ds, hash, err
}

// ComputeLayoutWithCacheInfo composes the chart with caching and returns
// cache hit info. sourceHash keys the layout cache; pass the hash returned
// by Load.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, ds *dataset.Dataset, sourceHash string, opts Options) (*chart.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(sourceHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := chart.UnmarshalLayout(data)
			if err == nil {
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}

	layout, err := buildLayout(ds, opts)
	if err != nil {
		return nil, false, err
	}

	if data, err := layout.Marshal(); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
	}

	return layout, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, ds *dataset.Dataset, sourceHash string, opts Options) (*chart.Layout, error) {
	layout, _, err := r.ComputeLayoutWithCacheInfo(ctx, ds, sourceHash, opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout *chart.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := layout.Marshal()
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	rendered, err := RenderFromLayout(layout, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout *chart.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
