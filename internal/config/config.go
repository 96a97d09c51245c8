// Package config manages took configuration and the global took directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all took configuration.
type Config struct {
	Store  StoreConfig  `toml:"store"`
	Report ReportConfig `toml:"report"`
	Serve  ServeConfig  `toml:"serve"`
}

// StoreConfig controls where the interval log lives and how it is locked.
type StoreConfig struct {
	DirName       string `toml:"dir_name"`
	FileName      string `toml:"file_name"`
	LockTimeoutMS int    `toml:"lock_timeout_ms"`
}

// LockTimeout returns the lock-acquisition timeout as a duration.
func (s StoreConfig) LockTimeout() time.Duration {
	return time.Duration(s.LockTimeoutMS) * time.Millisecond
}

// ReportConfig controls report defaults.
type ReportConfig struct {
	DefaultDays int `toml:"default_days"`
	BarWidth    int `toml:"bar_width"`
}

// ServeConfig controls the read-only HTTP API server.
type ServeConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DefaultConfig returns the defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			DirName:       ".took",
			FileName:      "took.json",
			LockTimeoutMS: 3000,
		},
		Report: ReportConfig{
			DefaultDays: 1,
			BarWidth:    30,
		},
		Serve: ServeConfig{
			Host: "127.0.0.1",
			Port: 8665,
		},
	}
}

// LoadConfig reads config from <took home>/config.toml, falling back to
// defaults. Absent or non-positive values are restored to their defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(tookHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	def := DefaultConfig()
	if cfg.Store.DirName == "" {
		cfg.Store.DirName = def.Store.DirName
	}
	if cfg.Store.FileName == "" {
		cfg.Store.FileName = def.Store.FileName
	}
	if cfg.Store.LockTimeoutMS <= 0 {
		cfg.Store.LockTimeoutMS = def.Store.LockTimeoutMS
	}
	if cfg.Report.DefaultDays <= 0 {
		cfg.Report.DefaultDays = def.Report.DefaultDays
	}
	if cfg.Report.BarWidth <= 0 {
		cfg.Report.BarWidth = def.Report.BarWidth
	}
	if cfg.Serve.Port <= 0 {
		cfg.Serve.Port = def.Serve.Port
	}

	return cfg, nil
}

// SaveConfig writes the config to <took home>/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(tookHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// tookHome returns the global took directory. It doubles as the fallback
// store location when no project-local took directory is found.
func tookHome() string {
	if env := os.Getenv("TOOK_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".took")
}

// TookHome is exported for use by other packages.
func TookHome() string {
	return tookHome()
}
