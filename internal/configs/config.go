package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig is the per-user configuration stored in config.toml.
type UserConfig struct {
	// SecretsRoot overrides the base root under which secrets directories
	// are created. Empty means the OS-convention default.
	SecretsRoot string `toml:"secrets_root"`
}

// LoadUserConfig loads the user configuration from the config file. A
// missing file yields an empty config rather than an error.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserPungaSettings.UserConfigsPath, "config.toml")

	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserPungaSettings.UserConfigsPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}
