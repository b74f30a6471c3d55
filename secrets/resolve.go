package secrets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/punga/internal/configs"
)

// DefaultRoot returns the base directory under which all secrets directories
// are created, honoring the PUNGA_ROOT environment variable and the user
// config file before falling back to the per-user data directory.
func DefaultRoot() (string, error) {
	return configs.SecretsRoot()
}

// Resolve maps an identifier to its secrets directory under root.
//
// The mapping is pure and deterministic: the identifier's text is used
// verbatim as the leaf directory name, so the same root and identifier
// always resolve to the same path.
func Resolve(root string, id ID) string {
	return filepath.Join(root, id.String())
}

// EnsureDirectory creates dir and any missing parents if absent, and
// succeeds silently if it already exists. It returns the now-existing path
// for convenience.
//
// MkdirAll is safe under concurrent callers: a second process racing to
// create the same directory never observes an error or a half-created path.
func EnsureDirectory(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating secrets directory %s: %w", dir, err)
	}
	return dir, nil
}
