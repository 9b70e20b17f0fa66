package config

import (
	"errors"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultConfigFileName is the conventional config file name inside the
// taskboard directory.
const DefaultConfigFileName = "config.toml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, when present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load(configPath string) (*Config, error) {
	if configPath != "" {
		if err := l.config.LoadFromFile(configPath); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(configPath string, overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load(configPath)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile merges settings from a TOML file into the configuration.
// A missing file is not an error; the defaults stand.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, c)
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	DBDir         *string
	DBFilename    *string
	DatasetSource *string
	Timeout       *time.Duration
	Verbose       *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}
	if overrides.DatasetSource != nil {
		config.Dataset.Source = *overrides.DatasetSource
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
