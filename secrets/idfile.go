package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// IDFileName is the name of the identifier file at the repository root.
// It is the only artifact this system checks into the repository.
const IDFileName = ".punga_id"

// ReadIDFile reads and strictly parses the identifier file at idPath.
//
// A single trailing newline is tolerated; any other deviation from the
// canonical encoding fails with ErrMalformedIdentifier. A missing file is
// reported as the underlying fs.ErrNotExist so callers can branch on it.
func ReadIDFile(idPath string) (ID, error) {
	data, err := os.ReadFile(idPath)
	if err != nil {
		return ID{}, err
	}

	id, err := ParseID(strings.TrimSpace(string(data)))
	if err != nil {
		return ID{}, fmt.Errorf("reading identifier from %s: %w", idPath, err)
	}

	return id, nil
}

// WriteIDFileIfAbsent creates the identifier file at idPath holding id, only
// if no file exists there yet. It reports whether the file was created.
//
// An existing file is never overwritten, so repeated initialization calls
// preserve the identifier a repository was first bound to. Creation uses an
// exclusive open, so two racing processes cannot both win.
func WriteIDFileIfAbsent(idPath string, id ID) (bool, error) {
	f, err := os.OpenFile(idPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("creating identifier file %s: %w", idPath, err)
	}
	defer f.Close()

	if _, err := f.WriteString(id.String() + "\n"); err != nil {
		return false, fmt.Errorf("writing identifier file %s: %w", idPath, err)
	}

	return true, nil
}

// EnsureIDFile loads the repository's identifier, generating and persisting
// a fresh one if the identifier file does not exist yet. It reports whether
// a new identifier was generated.
//
// A malformed existing file is an error, never rewritten. If another process
// creates the file between the read and the write, both processes converge
// on whichever identifier won the race.
func EnsureIDFile(repoRoot string) (ID, bool, error) {
	idPath := filepath.Join(repoRoot, IDFileName)

	id, err := ReadIDFile(idPath)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return ID{}, false, err
	}

	id = GenerateID()
	created, err := WriteIDFileIfAbsent(idPath, id)
	if err != nil {
		return ID{}, false, err
	}
	if !created {
		// Lost the race to another process; read the winner's identifier back.
		id, err = ReadIDFile(idPath)
		if err != nil {
			return ID{}, false, err
		}
	}

	return id, created, nil
}

// FindRepoRoot traverses up from the working directory to find the directory
// containing the identifier file. Returns the path to that directory if
// found, empty string otherwise. Stops searching when it reaches one level
// above the user's home directory.
func FindRepoRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	for {
		// Stop searching at one level above home directory
		if currentDir == path.Join(homeDir, "..") {
			return "", nil
		}

		idPath := filepath.Join(currentDir, IDFileName)
		fileInfo, err := os.Stat(idPath)
		// No error means the path exists
		if err == nil {
			if fileInfo.Mode().IsRegular() {
				return currentDir, nil
			}
		} else if !os.IsNotExist(err) {
			// Return any error that's not "file not found" (like permission issues)
			return "", fmt.Errorf("error checking for %s at %s: %w", IDFileName, currentDir, err)
		}

		parentDir := filepath.Dir(currentDir)

		// If we've reached the filesystem root and haven't found the id file
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}
