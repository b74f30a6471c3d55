package audit

import (
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"github.com/PolarWolf314/punga/internal/configs"
)

// logFileName is the JSON Lines file kept at the secrets base root.
const logFileName = "audit.jsonl"

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	Username  string `json:"user"` // System username performing the operation.
	Hostname  string `json:"host"` // Machine the operation ran on.
	Operation string `json:"op"`   // Operation name (init, path, read).

	// Optional fields depending on operation.
	ID          string `json:"id,omitempty"`          // Repository identifier.
	SecretsPath string `json:"secrets_path,omitempty"` // Resolved secrets directory.
	SecretName  string `json:"secret,omitempty"`       // For read.
	IDCreated   bool   `json:"id_created,omitempty"`   // For init: identifier newly generated.
}

// Log appends an entry to the audit log.
// If logging fails, the entry is dropped silently. Operations should not
// fail just because audit logging failed.
func Log(entry Entry) {
	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	// The base root may not exist yet on the very first operation.
	if err := os.MkdirAll(filepath.Dir(logPath), 0o700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// NewEntry is a convenience function that populates user and host fields.
func NewEntry(op string) Entry {
	entry := Entry{Operation: op}

	entry.Username = configs.UserPungaSettings.Username
	if host, err := os.Hostname(); err == nil {
		entry.Hostname = host
	}

	return entry
}

// LogPath returns the path to the audit log file at the secrets base root.
// Returns empty string if the root cannot be resolved.
func LogPath() string {
	root, err := configs.SecretsRoot()
	if err != nil {
		return ""
	}
	return filepath.Join(root, logFileName)
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
