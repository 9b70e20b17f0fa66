package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the taskboard application
type Config struct {
	Database    DatabaseConfig    `toml:"database"`
	Dataset     DatasetConfig     `toml:"dataset"`
	Application ApplicationConfig `toml:"application"`
}

// DatabaseConfig holds key-value store configuration
type DatabaseConfig struct {
	Dir      string `toml:"dir" env:"TASKBOARD_DB_DIR"`
	Filename string `toml:"filename" env:"TASKBOARD_DB_FILENAME"`
}

// DatasetConfig holds static dataset source configuration
type DatasetConfig struct {
	Source string `toml:"source" env:"TASKBOARD_DATASET"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"timeout" env:"TASKBOARD_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TASKBOARD_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".taskboard")

	return &Config{
		Database: DatabaseConfig{
			Dir:      defaultDir,
			Filename: "taskboard.db",
		},
		Dataset: DatasetConfig{
			Source: filepath.Join(defaultDir, "tasks.json"),
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the key-value store file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TASKBOARD_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TASKBOARD_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if source := os.Getenv("TASKBOARD_DATASET"); source != "" {
		c.Dataset.Source = source
	}
	if timeout := os.Getenv("TASKBOARD_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TASKBOARD_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Dataset.Source == "" {
		return &ConfigError{Field: "dataset.source", Message: "dataset source cannot be empty"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
