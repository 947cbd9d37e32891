package config

import (
	"os"
	"strconv"
	"strings"
)

// FromEnv overlays FUNGIBLE_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("FUNGIBLE_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("FUNGIBLE_FSYNC"); v != "" {
		cfg.Fsync = v
	}
	if v := os.Getenv("FUNGIBLE_FSYNC_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.FsyncIntervalMs = n
		}
	}
	if v := os.Getenv("FUNGIBLE_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("FUNGIBLE_GRPC_ADDR"); v != "" {
		cfg.GRPCAddr = v
	}
	if v := os.Getenv("FUNGIBLE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FUNGIBLE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("FUNGIBLE_LOG_OUTPUTS"); v != "" {
		cfg.Log.Outputs = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Log.Outputs = append(cfg.Log.Outputs, p)
			}
		}
	}
	if v := os.Getenv("FUNGIBLE_ASSETS_NAMESPACE"); v != "" {
		cfg.Registry.AssetsNamespace = v
	}
	if v := os.Getenv("FUNGIBLE_PAIRS_NAMESPACE"); v != "" {
		cfg.Registry.PairsNamespace = v
	}
	if v := os.Getenv("FUNGIBLE_MAX_LIST_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Registry.MaxListLimit = n
		}
	}
	if v := os.Getenv("FUNGIBLE_CHANGE_RETENTION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Registry.ChangeRetention = n
		}
	}
}
