// Package config provides Viper-based configuration loading for the
// arsenal build calculator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/voidrig/arsenal/internal/game/capacity"
)

// ContentConfig holds the paths the content loaders read from.
type ContentConfig struct {
	// Root is the content directory holding mods/, warframes/, weapons/,
	// companions/, and riven_caps.yaml.
	Root string `mapstructure:"root"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// CapacityConfig holds the budget defaults applied when a build file
// does not set its own.
type CapacityConfig struct {
	// Base is the unmodified capacity budget.
	Base int `mapstructure:"base"`
}

// Config is the top-level application configuration.
type Config struct {
	Content  ContentConfig  `mapstructure:"content"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Capacity CapacityConfig `mapstructure:"capacity"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if c.Content.Root == "" {
		errs = append(errs, "content.root must not be empty")
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Capacity.Base < 0 {
		errs = append(errs, fmt.Sprintf("capacity.base must be >= 0, got %d", c.Capacity.Base))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with ARSENAL_ prefix
	v.SetEnvPrefix("ARSENAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("content.root", "content")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("capacity.base", capacity.DefaultBaseCapacity)
}
