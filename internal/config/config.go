// Package config provides configuration management for skillcheck using Viper.
//
// Configuration covers presentation preferences only (default report
// format, color). Validation thresholds and rule tables are fixed
// constants of the engine and are deliberately not configurable.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/tmorrison/skillcheck/internal/errors"
)

// AppName is the application name used for config file naming.
const AppName = "skillcheck"

// Config represents the top-level configuration structure.
type Config struct {
	// Format is the default report format: text, json, or yaml.
	Format string `mapstructure:"format" yaml:"format"`

	// Color controls colorized output: auto, always, or never.
	Color string `mapstructure:"color" yaml:"color"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	// Environment variable support
	viper.SetEnvPrefix("SKILLCHECK")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("format", "text")
	viper.SetDefault("color", "auto")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls
// back to defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Implicit load falls back to defaults
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	return &cfg, nil
}
