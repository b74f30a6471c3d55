package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/punga/internal/configs"
	logger "github.com/PolarWolf314/punga/internal/logging"
)

// setupTestEnvironment creates an empty repository directory, changes into
// it, points the secrets base root at a second temp directory, and resets
// all command state. Returns the repository directory and the base root.
func setupTestEnvironment(t *testing.T) (repoDir, secretsRoot string) {
	t.Helper()

	repoDir = t.TempDir()
	secretsRoot = filepath.Join(t.TempDir(), "secrets")
	t.Setenv(configs.SecretsRootEnv, secretsRoot)
	t.Setenv("NO_COLOR", "1")

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

	ResetGlobalState()
	SetLogger(logger.Logger{})
	t.Cleanup(ResetGlobalState)

	return repoDir, secretsRoot
}

// writeTestSecret writes a secret file, creating parent directories.
func writeTestSecret(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatalf("Failed to create secret directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write secret file: %v", err)
	}
}

// executeCommand runs the root command with the given arguments and captures
// everything written to stdout. The command's error is returned alongside.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	originalStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	rootCmd := GetRootCmd()
	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = originalStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("Failed to read captured output: %v", err)
	}

	// Flag values persist on the shared command tree between runs.
	for _, cmd := range rootCmd.Commands() {
		resetCommandFlags(cmd)
	}
	resetCommandFlags(rootCmd)
	ResetGlobalState()

	return buf.String(), execErr
}
