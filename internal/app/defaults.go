package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - FINFO_CONFIG_PATH: config file location (default: ~/.config/finfo.toml)
//   - FINFO_HOME: base directory for finfo data (default: ~/.local/share/finfo)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// getConfigPath returns the config file path, checking FINFO_CONFIG_PATH env var first,
// then falling back to the default ~/.config/finfo.toml.
func getConfigPath() (string, error) {
	if path := os.Getenv("FINFO_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "finfo.toml"), nil
}

// getBaseDir returns the base directory for finfo data, checking FINFO_HOME env var first,
// then falling back to the XDG default ~/.local/share/finfo.
func getBaseDir() (string, error) {
	if path := os.Getenv("FINFO_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "finfo"), nil
}
