package configs

import (
	"path/filepath"
	"testing"
)

func TestSaveTOML_CreatesParentDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "deeper", "config.toml")

	saved := &UserConfig{SecretsRoot: "/srv/secrets"}
	if err := SaveTOML(path, saved); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded := &UserConfig{}
	if err := LoadTOML(path, loaded); err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if loaded.SecretsRoot != saved.SecretsRoot {
		t.Errorf("Round-trip changed SecretsRoot: %q != %q", loaded.SecretsRoot, saved.SecretsRoot)
	}
}

func TestLoadTOML_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	loaded := &UserConfig{}
	if err := LoadTOML(filepath.Join(tmpDir, "missing.toml"), loaded); err == nil {
		t.Error("LoadTOML succeeded on a missing file, expected error")
	}
}
