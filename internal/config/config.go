package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/voydwalkr/fungible/pkg/log"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	DataDir         string         `json:"dataDir" yaml:"dataDir"`
	Fsync           string         `json:"fsync" yaml:"fsync"`
	FsyncIntervalMs int            `json:"fsyncIntervalMs" yaml:"fsyncIntervalMs"`
	HTTPAddr        string         `json:"httpAddr" yaml:"httpAddr"`
	GRPCAddr        string         `json:"grpcAddr" yaml:"grpcAddr"`
	Log             log.Config     `json:"log" yaml:"log"`
	Registry        RegistryConfig `json:"registry" yaml:"registry"`
}

// RegistryConfig names the store namespaces, caps list results and bounds
// the change feed.
type RegistryConfig struct {
	AssetsNamespace string `json:"assetsNamespace" yaml:"assetsNamespace"`
	PairsNamespace  string `json:"pairsNamespace" yaml:"pairsNamespace"`
	MaxListLimit    int    `json:"maxListLimit" yaml:"maxListLimit"`
	// ChangeRetention is the number of change feed entries kept; 0 keeps all.
	ChangeRetention int `json:"changeRetention" yaml:"changeRetention"`
}

var namespaceName = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// Default returns built-in defaults.
func Default() Config {
	return Config{
		DataDir:         DefaultDataDir(),
		Fsync:           "always",
		FsyncIntervalMs: 5,
		HTTPAddr:        ":8080",
		GRPCAddr:        ":50051",
		Log:             log.Config{Level: "info", Format: "text"},
		Registry: RegistryConfig{
			AssetsNamespace: "assets",
			PairsNamespace:  "pairs",
			MaxListLimit:    1000,
			ChangeRetention: 10000,
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension) on top of
// the defaults. If path is empty, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Validate reports every problem with cfg.
func (c Config) Validate() error {
	var err error
	if c.DataDir == "" {
		err = multierr.Append(err, fmt.Errorf("config: dataDir is empty"))
	}
	switch c.Fsync {
	case "always", "interval", "never":
	default:
		err = multierr.Append(err, fmt.Errorf("config: unknown fsync mode %q", c.Fsync))
	}
	if c.Fsync == "interval" && c.FsyncIntervalMs <= 0 {
		err = multierr.Append(err, fmt.Errorf("config: fsyncIntervalMs must be positive"))
	}
	if _, lerr := log.ParseLevel(c.Log.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("config: log: %w", lerr))
	}
	for _, ns := range []string{c.Registry.AssetsNamespace, c.Registry.PairsNamespace} {
		if !namespaceName.MatchString(ns) {
			err = multierr.Append(err, fmt.Errorf("config: invalid namespace %q", ns))
		}
	}
	if c.Registry.AssetsNamespace == c.Registry.PairsNamespace {
		err = multierr.Append(err, fmt.Errorf("config: assets and pairs share namespace %q", c.Registry.AssetsNamespace))
	}
	if c.Registry.MaxListLimit <= 0 {
		err = multierr.Append(err, fmt.Errorf("config: maxListLimit must be positive"))
	}
	if c.Registry.ChangeRetention < 0 {
		err = multierr.Append(err, fmt.Errorf("config: changeRetention must not be negative"))
	}
	return err
}
