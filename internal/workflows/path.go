package workflows

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/punga/internal/audit"
	"github.com/PolarWolf314/punga/secrets"
)

// PathResult contains the outcome of a path lookup.
type PathResult struct {
	// ID is the identifier the repository is bound to.
	ID secrets.ID

	// SecretsPath is the verified-existing secrets directory.
	SecretsPath string
}

// lookup resolves the current repository's identifier to an existing
// secrets store. Shared by the path and read workflows.
func lookup() (secrets.ID, *secrets.Store, error) {
	repoRoot, err := secrets.FindRepoRoot()
	if err != nil {
		return secrets.ID{}, nil, fmt.Errorf("locating repository root: %w", err)
	}
	if repoRoot == "" {
		return secrets.ID{}, nil, fmt.Errorf("no %s file found: %w", secrets.IDFileName, secrets.ErrNotInitialized)
	}

	id, err := secrets.ReadIDFile(filepath.Join(repoRoot, secrets.IDFileName))
	if err != nil {
		return secrets.ID{}, nil, err
	}

	store, err := secrets.FromID(id)
	if err != nil {
		return secrets.ID{}, nil, err
	}
	if store == nil {
		return secrets.ID{}, nil, fmt.Errorf("secrets directory for %s does not exist: %w", id, secrets.ErrNotInitialized)
	}

	return id, store, nil
}

// Path resolves the current repository's secrets directory without mutating
// anything.
//
// Returns secrets.ErrNotInitialized when the repository has no identifier
// file, or when the identifier resolves to a directory that has not been
// created yet. Genuine filesystem faults are returned as-is.
func Path(ctx context.Context) (*PathResult, error) {
	id, store, err := lookup()
	if err != nil {
		return nil, err
	}

	auditEntry := audit.NewEntry("path")
	auditEntry.ID = id.String()
	auditEntry.SecretsPath = store.Path()
	audit.Log(auditEntry)

	return &PathResult{
		ID:          id,
		SecretsPath: store.Path(),
	}, nil
}

// ReadSecret reads a single secret file from the current repository's
// secrets directory through the accessor, enforcing containment.
func ReadSecret(ctx context.Context, name string) ([]byte, error) {
	id, store, err := lookup()
	if err != nil {
		return nil, err
	}

	data, err := store.Read(name)
	if err != nil {
		return nil, err
	}

	auditEntry := audit.NewEntry("read")
	auditEntry.ID = id.String()
	auditEntry.SecretName = name
	audit.Log(auditEntry)

	return data, nil
}
