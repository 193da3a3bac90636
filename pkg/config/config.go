// Package config manages TOML configuration for segmentation services:
// cutter tuning knobs, dictionary file locations, and log level.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the whole configuration tree.
type Config struct {
	Cutter CutterConfig `toml:"cutter"`
	Dict   DictConfig   `toml:"dict"`
	Log    LogConfig    `toml:"log"`
}

// CutterConfig controls Cutter construction.
type CutterConfig struct {
	HMMDefault bool `toml:"hmm_default"`
	CacheSize  int  `toml:"cache_size"`
}

// DictConfig locates dictionary resources on disk.
type DictConfig struct {
	DefaultPath  string `toml:"default_path"`
	SnapshotPath string `toml:"snapshot_path"`
}

// LogConfig sets the process-wide log level ("debug", "info", "warn",
// "error").
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config with the package's built-in defaults:
// HMM on, a 4096-entry route cache, the embedded dictionary (no
// override path), no snapshot, info-level logging.
func DefaultConfig() *Config {
	return &Config{
		Cutter: CutterConfig{
			HMMDefault: true,
			CacheSize:  4096,
		},
		Dict: DictConfig{
			DefaultPath:  "",
			SnapshotPath: "",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Init loads configPath, creating it from DefaultConfig if it does
// not yet exist.
func Init(configPath string) (*Config, error) {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("config: wrote default config to %s", configPath)
		return cfg, nil
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Warnf("config: failed to load %s, using defaults: %v", configPath, err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// Load decodes a Config from a TOML file.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save encodes cfg as TOML to configPath, overwriting it.
func Save(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(cfg)
}

// Update changes the non-nil fields and persists the result.
func (c *Config) Update(configPath string, hmmDefault *bool, cacheSize *int, logLevel *string) error {
	if hmmDefault != nil {
		c.Cutter.HMMDefault = *hmmDefault
	}
	if cacheSize != nil {
		c.Cutter.CacheSize = *cacheSize
	}
	if logLevel != nil {
		c.Log.Level = *logLevel
	}
	return Save(c, configPath)
}
