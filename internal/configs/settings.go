package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/punga/internal/utils"
)

// SecretsRootEnv overrides the base root under which all secrets directories
// live. Intended for tests and custom deployments.
const SecretsRootEnv = "PUNGA_ROOT"

// UserSettings holds the per-user paths Pūnga works with. They are
// independent of whatever repository a command runs in.
type UserSettings struct {
	SecretsRootPath string
	UserConfigsPath string
	Username        string
}

var UserPungaSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")

	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	username, err := utils.GetUsername()
	if err != nil {
		log.Fatalf("error getting username: %s", err)
	}

	UserPungaSettings = &UserSettings{
		SecretsRootPath: filepath.Join(dataDir, "punga", "secrets"),
		UserConfigsPath: filepath.Join(configDir, "punga"),
		Username:        username,
	}
}

// SecretsRoot returns the base root under which secrets directories are
// resolved. Priority: the PUNGA_ROOT environment variable, then the
// secrets_root value from the user config file, then the OS-convention
// local data directory.
func SecretsRoot() (string, error) {
	if root := os.Getenv(SecretsRootEnv); root != "" {
		return root, nil
	}

	config, err := LoadUserConfig()
	if err != nil {
		return "", err
	}
	if config.SecretsRoot != "" {
		return config.SecretsRoot, nil
	}

	return UserPungaSettings.SecretsRootPath, nil
}
