// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appDir = "hangman"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "config.toml")
}

// DefaultImagePath returns the default image asset path.
func DefaultImagePath() string {
	return filepath.Join(XDGConfigHome(), appDir, "images.hif")
}

// DefaultDictionaryPath returns the default dictionary path.
func DefaultDictionaryPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "words.txt")
}
