package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "COURSEWORK_CONFIG"
	// ConfigFileName is the default config file name
	ConfigFileName = "coursework.yaml"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "coursework"
)

// FindConfigPath searches for config file in priority order:
// 1. $COURSEWORK_CONFIG (explicit path)
// 2. ./coursework.yaml (working directory)
// 3. $XDG_CONFIG_HOME/coursework/config.yaml
// 4. ~/.config/coursework/config.yaml
//
// Returns empty string if no config file found
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// ResolveDataDir anchors a relative data directory at the directory holding
// the config file, so "data: {dir: ./data}" means the same thing wherever the
// command is run from. Absolute dirs and an empty configPath leave dir as is.
func ResolveDataDir(configPath, dir string) string {
	if configPath == "" || dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	base := filepath.Dir(configPath)
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	return filepath.Join(base, dir)
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir(configPath string) error {
	dir := filepath.Dir(configPath)
	return os.MkdirAll(dir, 0755)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
