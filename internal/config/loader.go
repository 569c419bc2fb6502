package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"hyprconf.yml",
	"hyprconf.yaml",
	".hyprconf.yml",
	".hyprconf.yaml",
}

// systemHyprlandConfig is checked after the XDG locations.
const systemHyprlandConfig = "/etc/hypr/hyprland.conf"

// Discover returns the path of the first config file found in dir,
// following the standard search order. It returns an empty string if
// no config file is found.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DiscoverUser looks for the same file names as Discover under hyprconf/
// in the XDG config home and config dirs.
func DiscoverUser() string {
	for _, name := range configFileNames {
		if path, err := xdg.SearchConfigFile(filepath.Join("hyprconf", name)); err == nil {
			return path
		}
	}
	return ""
}

// FindHyprlandConfig returns the compositor config to use when none is
// given: hypr/hyprland.conf under the XDG config home, then under each XDG
// config dir, then /etc/hypr/hyprland.conf. It returns "" when none exists;
// absence is not an error.
func FindHyprlandConfig() string {
	if path, err := xdg.SearchConfigFile(filepath.Join("hypr", "hyprland.conf")); err == nil {
		return path
	}
	if _, err := os.Stat(systemHyprlandConfig); err == nil {
		return systemHyprlandConfig
	}
	return ""
}

// Load reads and parses a hyprconf config file. If configPath is non-empty,
// that file is loaded directly. Otherwise, Load searches the current working
// directory using Discover and then the user config directory. If no config
// file is found, DefaultConfig is returned.
//
// Partial YAML files are supported: any fields not specified in the YAML
// retain their default values.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		configPath = Discover(wd)
	}
	if configPath == "" {
		configPath = DiscoverUser()
	}

	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	// Start from defaults so missing YAML fields retain non-zero defaults.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Writer.IndentStyle {
	case "space", "tab":
	default:
		return fmt.Errorf("writer.indent_style must be space or tab, got %q", c.Writer.IndentStyle)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	for rule, sev := range c.Lint.Rules {
		switch sev {
		case "off", "warn", "error":
		default:
			return fmt.Errorf("lint.rules.%s must be off, warn or error, got %q", rule, sev)
		}
	}
	return nil
}
