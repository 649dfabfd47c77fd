package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Runtime RuntimeConfig `toml:"runtime" yaml:"runtime"`
	History HistoryConfig `toml:"history" yaml:"history"`
	Logs    LogsConfig    `toml:"logs" yaml:"logs"`
}

type RuntimeConfig struct {
	Path string   `toml:"path" yaml:"path"`
	Args []string `toml:"args" yaml:"args"`
}

type HistoryConfig struct {
	Enabled       bool   `toml:"enabled" yaml:"enabled"`
	DBPath        string `toml:"db_path" yaml:"db_path"`
	RetentionDays int    `toml:"retention_days" yaml:"retention_days"`
}

type LogsConfig struct {
	Enabled     bool   `toml:"enabled" yaml:"enabled"`
	Dir         string `toml:"dir" yaml:"dir"`
	MaxFiles    int    `toml:"max_files" yaml:"max_files"`
	MaxFileSize int64  `toml:"max_file_size" yaml:"max_file_size"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := filepath.Join(home, ".local", "share", "carbonyl")
	return &Config{
		History: HistoryConfig{
			Enabled:       true,
			DBPath:        filepath.Join(dataDir, "history.db"),
			RetentionDays: 90,
		},
		Logs: LogsConfig{
			Enabled:     true,
			Dir:         filepath.Join(dataDir, "logs"),
			MaxFiles:    10,
			MaxFileSize: 4 << 20, // 4MB
		},
	}
}

// LoadFile reads config from path. The format follows the extension:
// .yaml and .yml are YAML, anything else is TOML.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Path returns the default config file location.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "carbonyl", "config.toml")
}
