package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Registry.AssetsNamespace != "assets" || cfg.Registry.PairsNamespace != "pairs" {
		t.Fatalf("default namespaces: %+v", cfg.Registry)
	}
	if cfg.Fsync != "always" {
		t.Fatalf("default fsync %q", cfg.Fsync)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "fungible.json")
	data := []byte(`{"dataDir":"/srv/fungible","registry":{"assetsNamespace":"tokens","maxListLimit":50},"log":{"level":"debug"}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != "/srv/fungible" {
		t.Fatalf("dataDir %q", cfg.DataDir)
	}
	if cfg.Registry.AssetsNamespace != "tokens" || cfg.Registry.MaxListLimit != 50 {
		t.Fatalf("registry %+v", cfg.Registry)
	}
	// untouched fields keep defaults
	if cfg.Registry.PairsNamespace != "pairs" {
		t.Fatalf("pairs namespace %q", cfg.Registry.PairsNamespace)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level %q", cfg.Log.Level)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "fungible.yaml")
	data := []byte("httpAddr: 127.0.0.1:9000\nfsync: never\nlog:\n  format: json\n  outputs: [stderr]\nregistry:\n  pairsNamespace: markets\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" || cfg.Fsync != "never" {
		t.Fatalf("cfg %+v", cfg)
	}
	if cfg.Log.Format != "json" || len(cfg.Log.Outputs) != 1 || cfg.Log.Outputs[0] != "stderr" {
		t.Fatalf("log %+v", cfg.Log)
	}
	if cfg.Registry.PairsNamespace != "markets" || cfg.Registry.AssetsNamespace != "assets" {
		t.Fatalf("registry %+v", cfg.Registry)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	file := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(file, []byte("registry: [unterminated"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Registry != Default().Registry {
		t.Fatalf("expected defaults")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("FUNGIBLE_DATA_DIR", "/tmp/fx")
	t.Setenv("FUNGIBLE_FSYNC", "interval")
	t.Setenv("FUNGIBLE_FSYNC_INTERVAL_MS", "20")
	t.Setenv("FUNGIBLE_LOG_OUTPUTS", "console, file:/tmp/fx.log")
	t.Setenv("FUNGIBLE_MAX_LIST_LIMIT", "not-a-number")
	t.Setenv("FUNGIBLE_CHANGE_RETENTION", "0")
	FromEnv(&cfg)
	if cfg.DataDir != "/tmp/fx" || cfg.Fsync != "interval" || cfg.FsyncIntervalMs != 20 {
		t.Fatalf("env override: %+v", cfg)
	}
	if len(cfg.Log.Outputs) != 2 || cfg.Log.Outputs[1] != "file:/tmp/fx.log" {
		t.Fatalf("outputs %v", cfg.Log.Outputs)
	}
	if cfg.Registry.MaxListLimit != Default().Registry.MaxListLimit {
		t.Fatalf("unparsable int should be ignored")
	}
	if cfg.Registry.ChangeRetention != 0 {
		t.Fatalf("change retention %d", cfg.Registry.ChangeRetention)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.DataDir = ""
	cfg.Fsync = "sometimes"
	cfg.Log.Level = "loud"
	cfg.Registry.PairsNamespace = "assets"
	cfg.Registry.MaxListLimit = 0
	cfg.Registry.ChangeRetention = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected errors")
	}
	errs := multierr.Errors(err)
	if len(errs) != 6 {
		t.Fatalf("expected 6 errors, got %d: %v", len(errs), err)
	}
	if !strings.Contains(err.Error(), "share namespace") {
		t.Fatalf("missing namespace clash: %v", err)
	}
}

func TestValidateNamespaceNames(t *testing.T) {
	cfg := Default()
	cfg.Registry.AssetsNamespace = "Bad Name"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected invalid namespace")
	}
}
