package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/themancalledzac/photogrid/pkg/cache"
	"github.com/themancalledzac/photogrid/pkg/errors"
	"github.com/themancalledzac/photogrid/pkg/gallery"
	"github.com/themancalledzac/photogrid/pkg/gallery/layout"
	"github.com/themancalledzac/photogrid/pkg/observability"
	"github.com/themancalledzac/photogrid/pkg/sink"
	"github.com/themancalledzac/photogrid/pkg/source/manifest"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
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
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	g, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Gallery = g
	result.ManifestHash = manifestHash(g.Items)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ItemCount = len(g.Items)

	// Resolve the row width budget: explicit option, then manifest, then
	// the package default.
	if opts.RowWidth == 0 {
		opts.RowWidth = g.RowWidth
	}
	if opts.RowWidth == 0 {
		opts.RowWidth = DefaultRowWidth
	}

	r.Logger.Info("loaded manifest",
		"path", opts.Manifest,
		"items", len(g.Items),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	rows, layoutHit, err := r.ComputeRowsWithCacheInfo(ctx, g.Items, result.ManifestHash, opts)
	if err != nil {
		return nil, err
	}
	result.Rows = rows
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.RowCount = len(rows)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"rows", len(rows),
		"row_width", opts.RowWidth,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, rows, g.Title, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the manifest named by the options.
func (r *Runner) Load(ctx context.Context, opts Options) (*manifest.Gallery, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Manifest)

	g, err := manifest.Load(opts.Manifest)

	itemCount := 0
	if g != nil {
		itemCount = len(g.Items)
	}
	observability.Pipeline().OnLoadComplete(ctx, opts.Manifest, itemCount, time.Since(start), err)
	return g, err
}

// ComputeRowsWithCacheInfo packs items into rows with caching and returns
// cache hit info. The manifestHash keys the cache together with the layout
// options.
func (r *Runner) ComputeRowsWithCacheInfo(ctx context.Context, items []gallery.Item, manifestHash string, opts Options) ([]layout.Row, bool, error) {
	opts.SetLayoutDefaults()
	if opts.RowWidth == 0 {
		opts.RowWidth = DefaultRowWidth
	}
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(manifestHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if rows, _, err := sink.ParseJSON(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return rows, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	// Compute
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(items), opts.RowWidth)

	builder := layout.NewBuilder(layout.WithPolicy(opts.Policy))
	rows, err := builder.BuildRows(items, opts.RowWidth)

	observability.Pipeline().OnLayoutComplete(ctx, len(rows), time.Since(start), err)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeLayout, err, "failed to build rows")
	}

	// Cache the result
	if data, err := sink.RenderJSON(rows, sink.WithJSONRowWidth(opts.RowWidth)); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return rows, false, nil
}

// ComputeRows is a convenience wrapper that discards the cache hit info.
func (r *Runner) ComputeRows(ctx context.Context, items []gallery.Item, manifestHash string, opts Options) ([]layout.Row, error) {
	rows, _, err := r.ComputeRowsWithCacheInfo(ctx, items, manifestHash, opts)
	return rows, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, rows []layout.Row, title string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Key artifacts by the serialized layout content.
	layoutData, err := sink.RenderJSON(rows)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeRender, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

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
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}

	// Render all formats
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)

	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := r.renderFormat(rows, title, format, opts)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, false, errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
		}
		rendered[format] = data
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, rows []layout.Row, title string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, rows, title, opts)
	return artifacts, err
}

// renderFormat dispatches one output format to its sink.
func (r *Runner) renderFormat(rows []layout.Row, title, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return sink.RenderJSON(rows,
			sink.WithJSONTitle(title),
			sink.WithJSONRowWidth(opts.RowWidth))
	case FormatSVG:
		svgOpts := []sink.SVGOption{sink.WithSVGRowWidth(opts.PixelWidth)}
		if opts.Labels {
			svgOpts = append(svgOpts, sink.WithSVGLabels())
		}
		return sink.RenderSVG(rows, svgOpts...)
	case FormatPreview:
		return []byte(sink.RenderPreview(rows, sink.WithPreviewWidth(opts.PreviewWidth))), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
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

// manifestHash computes a content hash over the gallery items.
func manifestHash(items []gallery.Item) string {
	data, _ := json.Marshal(items)
	return cache.Hash(data)
}
