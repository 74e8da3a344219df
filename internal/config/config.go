// Package config loads the gizmoget configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gizmo-platform/gizmoget/internal/platform"
	"github.com/gizmo-platform/gizmoget/internal/release"
)

// Config is the user's gizmoget configuration.
type Config struct {
	// Owner and Repo identify the project whose releases back the page.
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	// APIBase overrides the release API endpoint.
	APIBase string `yaml:"api_base"`
	// Listen is the serve command's bind address.
	Listen string `yaml:"listen"`
	// Page is the path of the download page HTML file.
	Page string `yaml:"page"`
	// Supported lists the platform labels with a wired download button.
	Supported []string `yaml:"supported"`
	// CacheDir is where fetched assets are stored.
	CacheDir string `yaml:"cache_dir"`
}

// DefaultConfigDir returns the default configuration directory, respecting
// XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gizmoget")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "gizmoget")
	}

	return filepath.Join(home, ".config", "gizmoget")
}

// DefaultCacheDir returns the default asset cache directory, respecting
// XDG_CACHE_HOME.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "gizmoget")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cache", "gizmoget")
	}

	return filepath.Join(home, ".cache", "gizmoget")
}

// Load reads the config from the given path. A missing file is not an error:
// the defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}

		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyDefaults() {
	if c.Owner == "" {
		c.Owner = "gizmo-platform"
	}

	if c.Repo == "" {
		c.Repo = "gizmo"
	}

	if c.APIBase == "" {
		c.APIBase = release.DefaultAPIBase
	}

	if c.Listen == "" {
		c.Listen = ":8080"
	}

	if c.Page == "" {
		c.Page = filepath.Join("site", "index.html")
	}

	if len(c.Supported) == 0 {
		c.Supported = platform.DefaultSupported()
	}

	if c.CacheDir == "" {
		c.CacheDir = DefaultCacheDir()
	}
}
