package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "fungible"

// DefaultDataDir returns the registry store directory used when neither the
// config file, FUNGIBLE_DATA_DIR nor --data-dir names one.
func DefaultDataDir() string {
	return dataDirFor(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

// dataDirFor resolves the per-user data directory for goos. Without a home
// directory it falls back to ./data relative to the working directory.
func dataDirFor(goos string, getenv func(string) string, home func() (string, error)) string {
	if xdg := getenv("XDG_DATA_HOME"); xdg != "" && goos != "windows" {
		return filepath.Join(xdg, appName)
	}
	if goos == "windows" {
		if local := getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "Fungible")
		}
	}
	dir, err := home()
	if err != nil || dir == "" {
		return filepath.Join(".", "data")
	}
	switch goos {
	case "darwin":
		return filepath.Join(dir, "Library", "Application Support", "Fungible")
	case "windows":
		return filepath.Join(dir, "AppData", "Local", "Fungible")
	default:
		return filepath.Join(dir, ".local", "share", appName)
	}
}
