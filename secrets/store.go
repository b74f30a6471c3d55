package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/PolarWolf314/punga/internal/configs"
)

// Store is a handle to a verified-existing secrets directory. It is the only
// object through which secret files are read, and every read it performs is
// contained within that directory.
type Store struct {
	dir string
}

// FromID resolves id against the configured base root and returns a handle
// to its secrets directory.
//
// A nil handle with a nil error means the directory does not exist — the
// expected state for a repository that has never run `punga init`. Callers
// should treat it as "secrets unavailable", not as a failure. A non-nil
// error indicates a genuine filesystem fault.
func FromID(id ID) (*Store, error) {
	root, err := configs.SecretsRoot()
	if err != nil {
		return nil, err
	}
	return FromIDAtRoot(root, id)
}

// FromIDAtRoot is like FromID with an explicit base root, for tests and
// custom layouts.
func FromIDAtRoot(root string, id ID) (*Store, error) {
	dir := Resolve(root, id)

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		// Not an error: the directory simply hasn't been initialized.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checking secrets directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("secrets path %s exists but is not a directory", dir)
	}

	return &Store{dir: dir}, nil
}

// Path returns the secrets directory this store reads from.
func (s *Store) Path() string {
	return s.dir
}

// SecretPath resolves name to an absolute path inside the secrets directory.
// Any name that would escape the directory fails with ErrInvalidSecretPath
// before the filesystem is touched.
func (s *Store) SecretPath(name string) (string, error) {
	if err := validateSecretName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, filepath.FromSlash(name)), nil
}

// Read returns the raw contents of the named secret file.
//
// A missing file fails with ErrSecretNotFound, distinct from lower-level
// I/O failures, so callers can tell "never provisioned" from "filesystem
// broken".
func (s *Store) Read(name string) ([]byte, error) {
	fullPath, err := s.SecretPath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("secret %q: %w", name, ErrSecretNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading secret %q: %w", name, err)
	}

	return data, nil
}

// ReadString returns the contents of the named secret file as text. Files
// that are not valid UTF-8 fail rather than being silently mangled.
func (s *Store) ReadString(name string) (string, error) {
	data, err := s.Read(name)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("secret %q is not valid UTF-8 text", name)
	}
	return string(data), nil
}

// ReadJSON reads the named secret file and unmarshals it into v. The name
// must carry a .json extension, which guards against pointing a typed read
// at the wrong file.
func (s *Store) ReadJSON(name string, v any) error {
	if !strings.HasSuffix(name, ".json") {
		return fmt.Errorf("secret %q: %w: expected .json", name, ErrInvalidExtension)
	}

	data, err := s.Read(name)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing secret %q: %w", name, err)
	}
	return nil
}

// validateSecretName enforces containment. Every component of name must be a
// normal path segment: absolute paths, volume names, empty, "." and ".."
// components are all rejected.
func validateSecretName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidSecretPath)
	}
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return fmt.Errorf("%w: %q must be relative", ErrInvalidSecretPath, name)
	}

	for _, part := range strings.Split(filepath.ToSlash(name), "/") {
		switch part {
		case "":
			return fmt.Errorf("%w: %q has an empty component", ErrInvalidSecretPath, name)
		case ".", "..":
			return fmt.Errorf("%w: %q has a non-normal component", ErrInvalidSecretPath, name)
		}
	}

	return nil
}
