package main

import (
	"fmt"
	"os"
	"path/filepath"

	"taskboard/internal/api"
	"taskboard/internal/cli"
	"taskboard/internal/config"
	"taskboard/internal/errors"
	"taskboard/internal/repository/kv"
)

func main() {
	// Resolve configuration: defaults, then config file, then environment
	loader := config.NewLoader()
	cfg, err := loader.Load(defaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Open the local key-value store backing the persistence layer
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening local store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// The dashboard is built once flags have settled on a dataset source
	factory := func(source string) api.Dashboard {
		return api.New(source, store)
	}

	root := cli.NewRootCommand(factory, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetUserMessage(err))
		os.Exit(1)
	}
}

// openStore opens the SQLite-backed key-value store, creating the
// directory on first use.
func openStore(cfg *config.Config) (kv.Store, error) {
	if err := os.MkdirAll(cfg.Database.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return kv.New(cfg.GetDatabasePath())
}

// defaultConfigPath returns the conventional config file location,
// ~/.taskboard/config.toml. An empty path skips file loading.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".taskboard", config.DefaultConfigFileName)
}
