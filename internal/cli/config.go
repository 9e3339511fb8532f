package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/themancalledzac/photogrid/pkg/pipeline"
)

// fileConfig holds CLI defaults read from config.toml. Every field is
// optional; flags always win over the file.
type fileConfig struct {
	RowWidth     int     `toml:"row_width"`
	PixelWidth   float64 `toml:"pixel_width"`
	PreviewWidth int     `toml:"preview_width"`
	Format       string  `toml:"format"`
	Labels       bool    `toml:"labels"`
}

// loadConfig reads the user's config file if one exists. A missing file is
// not an error; a malformed one is.
func loadConfig() (fileConfig, error) {
	var cfg fileConfig

	dir, err := configDir()
	if err != nil {
		return cfg, nil
	}
	path := filepath.Join(dir, "config.toml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// apply fills zero-valued options from the config file.
func (cfg fileConfig) apply(opts *pipeline.Options) {
	if opts.RowWidth == 0 {
		opts.RowWidth = cfg.RowWidth
	}
	if opts.PixelWidth == 0 {
		opts.PixelWidth = cfg.PixelWidth
	}
	if opts.PreviewWidth == 0 {
		opts.PreviewWidth = cfg.PreviewWidth
	}
	if cfg.Labels {
		opts.Labels = true
	}
}

// configDir returns the config directory using XDG standard (~/.config/photogrid/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
