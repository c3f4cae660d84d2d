// Package config loads efx.json, the optional project configuration for
// the efx CLI. Flags always win over the file; the file wins over the
// built-in defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/enhancedfx/efx/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "efx.json"

	// DefaultAddr is the default playground listen address.
	DefaultAddr = ":8090"

	// DefaultThemeDir is the default stylesheet output directory.
	DefaultThemeDir = "."
)

// Config represents the complete efx.json configuration.
type Config struct {
	// Name is the project name, used only for diagnostics.
	Name string `json:"name,omitempty"`

	// Preview configures the playground server.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Theme configures stylesheet generation.
	Theme ThemeConfig `json:"theme,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig configures the playground server.
type PreviewConfig struct {
	// Addr is the listen address, e.g. ":8090".
	Addr string `json:"addr,omitempty"`

	// Verbose enables debug logging.
	Verbose bool `json:"verbose,omitempty"`
}

// ThemeConfig configures stylesheet generation.
type ThemeConfig struct {
	// Dir is the output directory for generated stylesheets.
	Dir string `json:"dir,omitempty"`
}

// Default returns a config with the built-in defaults.
func Default() *Config {
	return &Config{
		Preview: PreviewConfig{Addr: DefaultAddr},
		Theme:   ThemeConfig{Dir: DefaultThemeDir},
	}
}

// Load reads efx.json from dir. A missing file is not an error: the
// defaults are returned.
func Load(dir string) (*Config, error) {
	cfg := Default()
	path := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "E100", errors.CategoryConfig, "cannot read "+path)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "E101", errors.CategoryConfig, "cannot parse "+path).
			WithDetail("efx.json must be valid JSON; see the documented schema")
	}
	cfg.applyDefaults()
	cfg.configPath = path
	return cfg, nil
}

// applyDefaults fills fields the file left empty.
func (c *Config) applyDefaults() {
	if c.Preview.Addr == "" {
		c.Preview.Addr = DefaultAddr
	}
	if c.Theme.Dir == "" {
		c.Theme.Dir = DefaultThemeDir
	}
}

// Path returns the file the config was loaded from, or the empty string
// when the defaults were used.
func (c *Config) Path() string {
	return c.configPath
}
