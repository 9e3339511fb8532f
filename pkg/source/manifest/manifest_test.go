package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/themancalledzac/photogrid/pkg/errors"
)

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

const validTOML = `
title = "beach day"
row_width = 5

[[items]]
id = "sunset"
file = "photos/sunset.jpg"
width = 1600
height = 900
rating = 5

[[items]]
file = "photos/pier.jpg"
width = 800
height = 1200
rating = 2
`

func TestLoadTOML(t *testing.T) {
	path := writeManifest(t, "gallery.toml", validTOML)

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if g.Title != "beach day" {
		t.Errorf("Title = %q, want %q", g.Title, "beach day")
	}
	if g.RowWidth != 5 {
		t.Errorf("RowWidth = %d, want 5", g.RowWidth)
	}
	if len(g.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(g.Items))
	}
	if g.Items[0].ID != "sunset" || g.Items[0].Rating != 5 {
		t.Errorf("first item = %+v", g.Items[0])
	}
	// Second item has no explicit ID and gets a generated one.
	if g.Items[1].ID == "" {
		t.Error("missing item ID was not assigned")
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeManifest(t, "gallery.json", `{
		"title": "beach day",
		"items": [
			{"id": "a", "width": 1600, "height": 900, "rating": 4}
		]
	}`)

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(g.Items) != 1 || g.Items[0].ID != "a" {
		t.Errorf("items = %+v", g.Items)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		code     errors.Code
	}{
		{
			name:     "unsupported extension",
			filename: "gallery.yaml",
			content:  "items: []",
			code:     errors.ErrCodeInvalidManifest,
		},
		{
			name:     "malformed toml",
			filename: "gallery.toml",
			content:  "[[items\nwidth = ",
			code:     errors.ErrCodeInvalidManifest,
		},
		{
			name:     "no items",
			filename: "gallery.toml",
			content:  `title = "empty"`,
			code:     errors.ErrCodeInvalidManifest,
		},
		{
			name:     "duplicate ids",
			filename: "gallery.toml",
			content: `
[[items]]
id = "a"
width = 100
height = 100
[[items]]
id = "a"
width = 100
height = 100
`,
			code: errors.ErrCodeInvalidManifest,
		},
		{
			name:     "bad dimensions",
			filename: "gallery.toml",
			content: `
[[items]]
id = "a"
width = 0
height = 100
`,
			code: errors.ErrCodeInvalidItem,
		},
		{
			name:     "bad rating",
			filename: "gallery.toml",
			content: `
[[items]]
id = "a"
width = 100
height = 100
rating = 9
`,
			code: errors.ErrCodeInvalidItem,
		},
		{
			name:     "path traversal in file",
			filename: "gallery.toml",
			content: `
[[items]]
id = "a"
file = "../secret.jpg"
width = 100
height = 100
`,
			code: errors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.filename, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "gallery.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}
