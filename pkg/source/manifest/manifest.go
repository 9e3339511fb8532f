// Package manifest loads gallery manifests from disk.
//
// A manifest lists the photos of one gallery with their pixel dimensions and
// curator ratings. Two formats are supported, selected by file extension:
// TOML (the primary, hand-editable format) and JSON (for generated
// manifests). Items without an explicit ID are assigned a random one so
// downstream stages can always address items by ID.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/themancalledzac/photogrid/pkg/errors"
	"github.com/themancalledzac/photogrid/pkg/gallery"
)

// Gallery is a parsed manifest.
type Gallery struct {
	Title    string         `toml:"title" json:"title"`
	RowWidth int            `toml:"row_width" json:"row_width"`
	Items    []gallery.Item `toml:"items" json:"items"`
}

// Load reads and validates a manifest file. The format is chosen by
// extension: .toml or .json.
func Load(path string) (*Gallery, error) {
	if err := errors.ValidateManifestFilename(filepath.Base(path)); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to read manifest: %s", path)
	}

	var g Gallery
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &g); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to parse TOML manifest: %s", path)
		}
	case ".json":
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to parse JSON manifest: %s", path)
		}
	}

	if err := normalize(&g); err != nil {
		return nil, err
	}
	return &g, nil
}

// normalize fills in missing item IDs and validates every entry.
func normalize(g *Gallery) error {
	if len(g.Items) == 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "manifest contains no items")
	}

	seen := make(map[string]bool, len(g.Items))
	for i := range g.Items {
		it := &g.Items[i]
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if err := errors.ValidateItemID(it.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "item %d", i)
		}
		if seen[it.ID] {
			return errors.New(errors.ErrCodeInvalidManifest, "duplicate item ID: %q", it.ID)
		}
		seen[it.ID] = true

		if it.File != "" {
			if err := errors.ValidateFilePath(it.File); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidManifest, err, "item %q", it.ID)
			}
		}
		if err := it.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidItem, err, "item %q", it.ID)
		}
	}
	return nil
}
