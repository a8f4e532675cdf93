// Package config provides configuration management for the coursework tool.
//
// Config file locations (priority order):
//  1. $COURSEWORK_CONFIG
//  2. ./coursework.yaml
//  3. $XDG_CONFIG_HOME/coursework/config.yaml
//  4. ~/.config/coursework/config.yaml
//
// A missing config file is not an error; defaults are used instead. A
// relative data directory in a config file is resolved against the file's
// own directory; without a file it stays relative to the working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultDataDir   = "./data"
	defaultInventory = "inventory.json"
	defaultRoster    = "students.txt"
	defaultReport    = "report.txt"
	defaultDatabase  = "coursework.db"
	defaultTimeout   = 5 * time.Second
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	cfg.Data.Dir = ResolveDataDir(path, cfg.Data.Dir)

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Data.Dir == "" {
		c.Data.Dir = defaultDataDir
	}
	if c.Data.Inventory == "" {
		c.Data.Inventory = defaultInventory
	}
	if c.Data.Roster == "" {
		c.Data.Roster = defaultRoster
	}
	if c.Data.Report == "" {
		c.Data.Report = defaultReport
	}
	if c.Data.Database == "" {
		c.Data.Database = defaultDatabase
	}
	if c.Store.Backend == "" {
		c.Store.Backend = StoreBackendFile
	}
	if c.Store.Format == "" {
		c.Store.Format = formatFromPath(c.Data.Inventory)
	}
	if c.Store.Timeout == nil {
		d := Duration(defaultTimeout)
		c.Store.Timeout = &d
	}
	if c.Ledger.AccountNumber == "" {
		c.Ledger.AccountNumber = "123456"
		c.Ledger.Savings = true
	}
	if c.Ledger.OpeningBalance == "" {
		c.Ledger.OpeningBalance = "1000"
	}
	if c.Warehouse.LowStockThreshold == 0 {
		c.Warehouse.LowStockThreshold = 10
	}
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreBackendFile, StoreBackendSQLite:
	default:
		return fmt.Errorf("invalid store backend %q", c.Store.Backend)
	}

	switch strings.ToLower(c.Store.Format) {
	case "json", "yaml", "yml":
	default:
		return fmt.Errorf("invalid store format %q", c.Store.Format)
	}

	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}

	if c.Warehouse.LowStockThreshold < 0 {
		return fmt.Errorf("low stock threshold cannot be negative")
	}
	return nil
}

// DataPath resolves a data file name against the data directory
func (c *Config) DataPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Data.Dir, name)
}

// InventoryPath returns the inventory snapshot path with the store format's extension
func (c *Config) InventoryPath() string {
	path := c.DataPath(c.Data.Inventory)
	want := "." + strings.ToLower(c.Store.Format)
	if ext := filepath.Ext(path); !strings.EqualFold(ext, want) {
		path = strings.TrimSuffix(path, ext) + want
	}
	return path
}

// StoreTimeout returns the per-operation persistence timeout
func (c *Config) StoreTimeout() time.Duration {
	if c.Store.Timeout == nil {
		return defaultTimeout
	}
	return c.Store.Timeout.Duration()
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Data dir: %s, Store: %s (%s)\n", c.Data.Dir, c.Store.Backend, c.Store.Format)
	summary += fmt.Sprintf("Log: %s/%s, Timeout: %s", c.Log.Level, c.Log.Format, c.StoreTimeout())
	return summary
}

func formatFromPath(path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		return "yaml"
	default:
		return "json"
	}
}
