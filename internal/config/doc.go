// Package config loads service configuration from JSON or YAML files and
// overlays FUNGIBLE_* environment variables.
//
// Example:
//
//	cfg, err := config.Load("/etc/fungible.yaml")
//	if err != nil { ... }
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil { ... }
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	defer rt.Close()
package config
