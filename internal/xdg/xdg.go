// Package xdg resolves XDG Base Directory paths for ecommit.
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "ecommit"

// ConfigDir returns the XDG config directory for ecommit. Checks
// XDG_CONFIG_HOME first, falls back to ~/.config.
func ConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, appName)
}

// DefaultConfigPath returns the conventional config file location if a
// file exists there, otherwise "". Callers use it when no explicit
// config path was given.
func DefaultConfigPath() string {
	path := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
