package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Cutter.HMMDefault {
		t.Fatal("want HMM enabled by default")
	}
	if cfg.Cutter.CacheSize <= 0 {
		t.Fatal("want a positive default cache size")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Dict.DefaultPath = "/tmp/words.txt"
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Dict.DefaultPath != cfg.Dict.DefaultPath {
		t.Fatalf("want %q, got %q", cfg.Dict.DefaultPath, loaded.Dict.DefaultPath)
	}
}

func TestInitCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg, err := Init(path)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if cfg.Cutter.CacheSize != DefaultConfig().Cutter.CacheSize {
		t.Fatal("want default cache size")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to be written: %v", err)
	}
}

func TestUpdate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	cfg := DefaultConfig()
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	size := 8192
	if err := cfg.Update(path, nil, &size, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.Cutter.CacheSize != size {
		t.Fatalf("want %d, got %d", size, reloaded.Cutter.CacheSize)
	}
}
