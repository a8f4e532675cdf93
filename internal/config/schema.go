package config

import (
	"time"
)

// Config is the root configuration structure
type Config struct {
	Version   int             `yaml:"version"`
	Log       LogConfig       `yaml:"log"`
	Data      DataConfig      `yaml:"data"`
	Store     StoreConfig     `yaml:"store"`
	Ledger    LedgerConfig    `yaml:"ledger"`
	Warehouse WarehouseConfig `yaml:"warehouse"`
}

// LogConfig controls the logger
type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// DataConfig names the files the exercises read and write. Relative paths
// are resolved against Dir.
type DataConfig struct {
	Dir       string `yaml:"dir"`
	Inventory string `yaml:"inventory"`
	Roster    string `yaml:"roster"`
	Report    string `yaml:"report"`
	Database  string `yaml:"database"`
	Seed      string `yaml:"seed,omitempty"`
}

// StoreBackend selects where snapshots are persisted
type StoreBackend string

const (
	StoreBackendFile   StoreBackend = "file"
	StoreBackendSQLite StoreBackend = "sqlite"
)

// StoreConfig holds persistence settings
type StoreConfig struct {
	Backend StoreBackend `yaml:"backend"`
	Format  string       `yaml:"format"` // json or yaml, file backend only
	Timeout *Duration    `yaml:"timeout,omitempty"`
}

// LedgerConfig describes the demo account
type LedgerConfig struct {
	AccountNumber  string `yaml:"account_number"`
	OpeningBalance string `yaml:"opening_balance"` // decimal string
	Savings        bool   `yaml:"savings"`
}

// WarehouseConfig holds warehouse reporting settings
type WarehouseConfig struct {
	LowStockThreshold int `yaml:"low_stock_threshold"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
