package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons   string `koanf:"icons"`   // "nerd", "unicode", or "none"
	Catalog string `koanf:"catalog"` // path to a TOML catalog, empty means built-in demo

	Popups PopupsConfig `koanf:"popups"`
	Mouse  MouseConfig  `koanf:"mouse"`
	Log    LogConfig    `koanf:"log"`
}

// PopupsConfig controls how row popups coordinate with each other.
type PopupsConfig struct {
	Exclusive bool `koanf:"exclusive"` // opening one row's menu closes the others
}

// MouseConfig holds pointer settings.
type MouseConfig struct {
	DoubleClickMs int `koanf:"double_click_ms"` // 100-2000, default 400
}

// LogConfig holds log output settings.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/encore/encore.log
	Level string `koanf:"level"` // debug, info, warn, error (default: info)
}

const (
	defaultDoubleClick = 400 * time.Millisecond
	minDoubleClickMs   = 100
	maxDoubleClickMs   = 2000
)

// Load reads the default config locations. extra, when non-empty, is loaded
// last and must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if extra != "" {
		if err := k.Load(file.Provider(expandPath(extra)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{Icons: "unicode"}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Catalog = expandPath(cfg.Catalog)
	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/encore/config.toml
		filepath.Join(xdg.ConfigHome, "encore", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DoubleClick returns the double-click window with defaults applied.
func (c *Config) DoubleClick() time.Duration {
	ms := c.Mouse.DoubleClickMs
	switch {
	case ms <= 0:
		return defaultDoubleClick
	case ms < minDoubleClickMs:
		ms = minDoubleClickMs
	case ms > maxDoubleClickMs:
		ms = maxDoubleClickMs
	}
	return time.Duration(ms) * time.Millisecond
}

// HasCatalog returns true if a catalog file is configured.
func (c *Config) HasCatalog() bool {
	return c.Catalog != ""
}
