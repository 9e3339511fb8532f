// Package cache provides layout and artifact caching for photogrid.
//
// Computing a layout is cheap; re-rendering large SVG artifacts for
// unchanged manifests is not. The pipeline hashes the manifest content and
// caches both the computed rows and rendered artifacts keyed by that hash,
// so repeated runs over an unchanged gallery skip straight to output.
//
// Cache is the storage interface. FileCache persists entries under a
// directory (the CLI default), NullCache disables caching. Keyer builds the
// cache keys; ScopedKeyer namespaces them per gallery.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry type. Layouts are cheap to recompute but artifacts
// can be large, so both expire within a day.
const (
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKeyOpts captures everything besides the manifest content that
// changes the computed rows.
type LayoutKeyOpts struct {
	RowWidth int    // Row width budget
	Policy   string // Name of the ratings policy in effect
}

// ArtifactKeyOpts captures rendering parameters for artifact caching.
type ArtifactKeyOpts struct {
	Format     string  // Output format ("json", "svg", "preview")
	PixelWidth float64 // Pixel row width for solved formats
	Labels     bool    // Whether labels were rendered
}

// Keyer builds cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey keys computed rows by manifest content hash and layout
	// options.
	LayoutKey(manifestHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys rendered output by layout hash and render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(manifestHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", manifestHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
