package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/punga/internal/configs"
	"github.com/PolarWolf314/punga/secrets"
)

// setupTestRepo creates an empty repository directory, changes into it, and
// points the secrets base root at a second temp directory. Returns both.
func setupTestRepo(t *testing.T) (repoDir, secretsRoot string) {
	t.Helper()
	repoDir = t.TempDir()
	secretsRoot = filepath.Join(t.TempDir(), "secrets")
	t.Setenv(configs.SecretsRootEnv, secretsRoot)

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
	if err := os.Chdir(repoDir); err != nil {
		t.Fatalf("Failed to change to repo dir: %v", err)
	}

	return repoDir, secretsRoot
}

func TestInit_FreshRepository(t *testing.T) {
	repoDir, secretsRoot := setupTestRepo(t)

	result, err := Init(context.Background(), InitOptions{})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if !result.IDCreated {
		t.Error("Expected IDCreated=true on first init")
	}

	// The identifier file lands in the repository.
	readBack, err := secrets.ReadIDFile(filepath.Join(repoDir, secrets.IDFileName))
	if err != nil {
		t.Fatalf("ReadIDFile failed: %v", err)
	}
	if readBack != result.ID {
		t.Errorf("Identifier file holds %s, result reported %s", readBack, result.ID)
	}

	// The secrets directory lands under the base root.
	expected := filepath.Join(secretsRoot, result.ID.String())
	if result.SecretsPath != expected {
		t.Errorf("SecretsPath = %s, expected %s", result.SecretsPath, expected)
	}
	if info, err := os.Stat(result.SecretsPath); err != nil || !info.IsDir() {
		t.Errorf("Secrets directory was not created: %v", err)
	}
}

func TestInit_Idempotent(t *testing.T) {
	setupTestRepo(t)

	first, err := Init(context.Background(), InitOptions{})
	if err != nil {
		t.Fatalf("First init failed: %v", err)
	}

	// Provision a secret between the two runs.
	secretPath := filepath.Join(first.SecretsPath, "api_key.txt")
	if err := os.WriteFile(secretPath, []byte("hunter2"), 0644); err != nil {
		t.Fatalf("Failed to write secret: %v", err)
	}

	second, err := Init(context.Background(), InitOptions{})
	if err != nil {
		t.Fatalf("Second init failed: %v", err)
	}
	if second.IDCreated {
		t.Error("Second init reported IDCreated=true")
	}
	if second.ID != first.ID {
		t.Errorf("Second init changed the identifier: %s != %s", second.ID, first.ID)
	}
	if second.SecretsPath != first.SecretsPath {
		t.Errorf("Second init changed the secrets path: %s != %s", second.SecretsPath, first.SecretsPath)
	}

	data, err := os.ReadFile(secretPath)
	if err != nil {
		t.Fatalf("Secret file disappeared after re-init: %v", err)
	}
	if string(data) != "hunter2" {
		t.Errorf("Secret file content changed: %q", data)
	}
}

func TestInit_ExplicitDirectory(t *testing.T) {
	_, secretsRoot := setupTestRepo(t)

	target := t.TempDir()
	result, err := Init(context.Background(), InitOptions{Dir: target})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if result.IDFilePath != filepath.Join(target, secrets.IDFileName) {
		t.Errorf("Identifier file at %s, expected it inside %s", result.IDFilePath, target)
	}
	if _, err := os.Stat(result.IDFilePath); err != nil {
		t.Errorf("Identifier file was not created: %v", err)
	}
	if result.SecretsPath != filepath.Join(secretsRoot, result.ID.String()) {
		t.Errorf("SecretsPath = %s, expected it under %s", result.SecretsPath, secretsRoot)
	}
}

func TestInit_MalformedIdentifierFile(t *testing.T) {
	repoDir, _ := setupTestRepo(t)

	idPath := filepath.Join(repoDir, secrets.IDFileName)
	if err := os.WriteFile(idPath, []byte("garbage\n"), 0644); err != nil {
		t.Fatalf("Failed to write identifier file: %v", err)
	}

	_, err := Init(context.Background(), InitOptions{})
	if !errors.Is(err, secrets.ErrMalformedIdentifier) {
		t.Fatalf("Expected ErrMalformedIdentifier, got: %v", err)
	}

	// The malformed file must survive untouched.
	data, readErr := os.ReadFile(idPath)
	if readErr != nil {
		t.Fatalf("Failed to read identifier file: %v", readErr)
	}
	if string(data) != "garbage\n" {
		t.Errorf("Init modified a malformed identifier file: %q", data)
	}
}

func TestInit_FromSubdirectoryFindsRoot(t *testing.T) {
	repoDir, _ := setupTestRepo(t)

	first, err := Init(context.Background(), InitOptions{})
	if err != nil {
		t.Fatalf("First init failed: %v", err)
	}

	subDir := filepath.Join(repoDir, "services", "api")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}
	if err := os.Chdir(subDir); err != nil {
		t.Fatalf("Failed to change to subdir: %v", err)
	}

	second, err := Init(context.Background(), InitOptions{})
	if err != nil {
		t.Fatalf("Init from subdirectory failed: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("Init from a subdirectory bound a new identifier: %s != %s", second.ID, first.ID)
	}

	// No stray identifier file in the subdirectory.
	if _, err := os.Stat(filepath.Join(subDir, secrets.IDFileName)); !errors.Is(err, os.ErrNotExist) {
		t.Error("Init created an identifier file in the subdirectory")
	}
}
