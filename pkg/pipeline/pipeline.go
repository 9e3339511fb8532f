// Package pipeline provides the core gallery pipeline for photogrid.
//
// This package implements the complete load → layout → render pipeline that
// can be used by the CLI and by library consumers. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate a gallery manifest from disk
//  2. Layout: Pack items into rows with the constraint engine
//  3. Render: Generate output in various formats (JSON, SVG, terminal)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Manifest: "gallery.toml",
//	    RowWidth: 5,
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/themancalledzac/photogrid/pkg/cache"
	"github.com/themancalledzac/photogrid/pkg/errors"
	"github.com/themancalledzac/photogrid/pkg/gallery/layout"
	"github.com/themancalledzac/photogrid/pkg/gallery/ratings"
	"github.com/themancalledzac/photogrid/pkg/source/manifest"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Consumers
// =============================================================================

const (
	// DefaultRowWidth is the row width budget used when neither the options
	// nor the manifest specify one.
	DefaultRowWidth = 5

	// DefaultPixelWidth is the default pixel row width for solved formats.
	DefaultPixelWidth = 1200.0

	// DefaultPreviewWidth is the default terminal column budget.
	DefaultPreviewWidth = 80

	// DefaultPolicyName identifies the built-in ratings policy in cache keys.
	DefaultPolicyName = "default"
)

// Format constants for output formats.
const (
	FormatJSON    = "json"
	FormatSVG     = "svg"
	FormatPreview = "preview"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON:    true,
	FormatSVG:     true,
	FormatPreview: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the gallery pipeline.
// This struct supports JSON serialization for batch configs.
type Options struct {
	// Load options
	Manifest string `json:"manifest,omitempty"` // Manifest file path
	Refresh  bool   `json:"refresh,omitempty"`  // Bypass cached layouts

	// Layout options
	RowWidth   int    `json:"row_width,omitempty"`
	PolicyName string `json:"policy,omitempty"` // Identifies Policy in cache keys

	// Render options
	Formats      []string `json:"formats,omitempty"`
	PixelWidth   float64  `json:"pixel_width,omitempty"`
	PreviewWidth int      `json:"preview_width,omitempty"`
	Labels       bool     `json:"labels,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger    `json:"-"`
	Policy ratings.Policy `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Gallery is the loaded manifest.
	Gallery *manifest.Gallery

	// ManifestHash is the content hash of the loaded items.
	ManifestHash string

	// Rows are the computed layout rows.
	Rows []layout.Row

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount  int
	RowCount   int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the computed rows came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, svg, preview)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.Manifest == "" {
		return errors.New(errors.ErrCodeInvalidInput, "manifest is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
// A zero RowWidth is left alone here - the runner resolves it from the
// manifest before falling back to DefaultRowWidth.
func (o *Options) SetLayoutDefaults() {
	if o.Policy == nil {
		o.Policy = ratings.Default{}
	}
	if o.PolicyName == "" {
		o.PolicyName = DefaultPolicyName
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.PixelWidth == 0 {
		o.PixelWidth = DefaultPixelWidth
	}
	if o.PreviewWidth == 0 {
		o.PreviewWidth = DefaultPreviewWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		RowWidth: o.RowWidth,
		Policy:   o.PolicyName,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		PixelWidth: o.PixelWidth,
		Labels:     o.Labels,
	}
}
