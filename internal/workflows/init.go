package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/punga/internal/audit"
	"github.com/PolarWolf314/punga/secrets"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// Dir is the repository root to bind. If empty, the nearest ancestor
	// directory holding an identifier file is used, falling back to the
	// working directory.
	Dir string

	// Verbose enables verbose logging output.
	Verbose bool
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// ID is the identifier the repository is bound to.
	ID secrets.ID

	// IDCreated reports whether a fresh identifier was generated, as opposed
	// to reusing one from a previous init.
	IDCreated bool

	// IDFilePath is the identifier file inside the repository.
	IDFilePath string

	// SecretsPath is the secrets directory outside the repository.
	SecretsPath string
}

// Init binds the repository to a secrets directory and ensures the
// directory exists.
//
// It loads the repository's identifier, generating and persisting one only
// if the identifier file is absent, then resolves and creates the secrets
// directory. Running Init repeatedly is a no-op beyond re-confirming the
// directory exists: the identifier is never regenerated and existing secret
// files are never touched.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	repoRoot := opts.Dir
	if repoRoot == "" {
		found, err := secrets.FindRepoRoot()
		if err != nil {
			return nil, fmt.Errorf("locating repository root: %w", err)
		}
		repoRoot = found
	}
	if repoRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		repoRoot = wd
	}

	id, created, err := secrets.EnsureIDFile(repoRoot)
	if err != nil {
		return nil, fmt.Errorf("ensuring identifier file: %w", err)
	}

	root, err := secrets.DefaultRoot()
	if err != nil {
		return nil, fmt.Errorf("resolving secrets base root: %w", err)
	}

	secretsPath, err := secrets.EnsureDirectory(secrets.Resolve(root, id))
	if err != nil {
		return nil, err
	}

	auditEntry := audit.NewEntry("init")
	auditEntry.ID = id.String()
	auditEntry.SecretsPath = secretsPath
	auditEntry.IDCreated = created
	audit.Log(auditEntry)

	return &InitResult{
		ID:          id,
		IDCreated:   created,
		IDFilePath:  filepath.Join(repoRoot, secrets.IDFileName),
		SecretsPath: secretsPath,
	}, nil
}
