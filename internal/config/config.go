// Package config loads quickfind configuration.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds global configuration
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

type BackendConfig struct {
	Name      string   `yaml:"name"`       // auto|rg|ag
	ExtraArgs []string `yaml:"extra_args"` // passed through to the tool
}

type SearchConfig struct {
	Exclude []string `yaml:"exclude"` // glob patterns filtered out of results
}

type LoggingConfig struct {
	Level   string `yaml:"level"` // error|warn|info|debug
	Metrics bool   `yaml:"metrics"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{Name: "auto"},
		Logging: LoggingConfig{Level: "warn"},
	}
}

// LoadConfig loads config from file or returns defaults
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory config
		return ".quickfind.yaml"
	}
	return filepath.Join(homeDir, ".config", "quickfind", "config.yaml")
}
