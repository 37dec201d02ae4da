// Package config loads the icontheme CLI configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/mjelva/icontheme"
)

// Config mirrors the CLI configuration file. Every field has a platform
// default, so a missing file is not an error.
type Config struct {
	// BaseDirs are the icon search directories, highest priority first.
	BaseDirs []string `mapstructure:"base_dirs"`

	// DefaultTheme is used when no --theme flag is given.
	DefaultTheme string `mapstructure:"default_theme"`

	// IncludeBaseline appends the baseline theme to every chain.
	IncludeBaseline bool `mapstructure:"include_baseline"`

	// Extensions is the probe order of icon file extensions.
	Extensions []string `mapstructure:"extensions"`

	// LogLevel sets CLI log verbosity (trace, debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "icontheme", "config.yaml")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultTheme:    icontheme.DefaultTheme,
		IncludeBaseline: true,
		Extensions:      append([]string(nil), icontheme.DefaultExtensions...),
		LogLevel:        "warn",
	}
}

// Load reads the configuration file at path, or the default location when
// path is empty. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("stat config file %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("default_theme", icontheme.DefaultTheme)
	v.SetDefault("include_baseline", true)
	v.SetDefault("extensions", icontheme.DefaultExtensions)
	v.SetDefault("log_level", "warn")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Options converts the configuration into library options. Empty fields
// stay zero so the library applies its own platform defaults.
func (c *Config) Options() icontheme.Options {
	return icontheme.Options{
		BaseDirs:                c.BaseDirs,
		DefaultTheme:            c.DefaultTheme,
		DisableBaselineFallback: !c.IncludeBaseline,
		Extensions:              c.Extensions,
	}
}
