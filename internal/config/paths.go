package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// On Linux this is $XDG_CONFIG_HOME/wikify/config.yml.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "wikify", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// relative to the current directory.
func ProjectConfigPath() string {
	return ".wikify.yml"
}

// LegacyProjectConfigPath returns the path to the legacy JSON project config.
func LegacyProjectConfigPath() string {
	return ".wikify.json"
}
