// Package configs manages per-user configuration for Pūnga.
//
// Configuration is stored in TOML format at a single level:
//
//   - User config: <UserConfigDir>/punga/config.toml
//
// # Base root resolution
//
// Every secrets directory lives under one base root. SecretsRoot resolves it
// with the following priority:
//
//  1. The PUNGA_ROOT environment variable (tests, custom deployments)
//  2. The secrets_root value in the user config file
//  3. The OS-convention local data directory
//     ($XDG_DATA_HOME or ~/.local/share, under punga/secrets)
//
// # Settings
//
// Global settings are initialized at startup:
//   - UserPungaSettings: per-user config and secrets root paths
//
// They are independent of whatever repository a command runs in, so it is
// safe to initialize them in a package init.
package configs
