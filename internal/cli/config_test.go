package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/themancalledzac/photogrid/pkg/pipeline"
)

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg != (fileConfig{}) {
		t.Errorf("loadConfig() = %+v, want zero config", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "row_width = 7\npixel_width = 960.0\nformat = \"svg\"\nlabels = true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.RowWidth != 7 {
		t.Errorf("RowWidth = %d, want 7", cfg.RowWidth)
	}
	if cfg.PixelWidth != 960.0 {
		t.Errorf("PixelWidth = %v, want 960", cfg.PixelWidth)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want %q", cfg.Format, "svg")
	}
	if !cfg.Labels {
		t.Error("Labels = false, want true")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("row_width = ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() succeeded on malformed file, want error")
	}
}

func TestFileConfigApply(t *testing.T) {
	cfg := fileConfig{RowWidth: 7, PixelWidth: 960, PreviewWidth: 100, Labels: true}

	opts := pipeline.Options{}
	cfg.apply(&opts)
	if opts.RowWidth != 7 || opts.PixelWidth != 960 || opts.PreviewWidth != 100 || !opts.Labels {
		t.Errorf("apply() on zero options = %+v", opts)
	}

	// Flags already set win over the file.
	opts = pipeline.Options{RowWidth: 4, PixelWidth: 800, PreviewWidth: 60}
	cfg.apply(&opts)
	if opts.RowWidth != 4 || opts.PixelWidth != 800 || opts.PreviewWidth != 60 {
		t.Errorf("apply() on explicit options = %+v", opts)
	}
}
