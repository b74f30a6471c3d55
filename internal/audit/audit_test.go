package audit

import (
	"os"
	"testing"

	"github.com/PolarWolf314/punga/internal/configs"
)

func TestLogAndReadEntries(t *testing.T) {
	root := t.TempDir()
	t.Setenv(configs.SecretsRootEnv, root)

	entry := NewEntry("init")
	entry.ID = "8095f7d2-73c7-4389-9056-b82b0649e44c"
	entry.IDCreated = true
	Log(entry)

	second := NewEntry("path")
	second.ID = entry.ID
	second.SecretsPath = "/srv/secrets/" + entry.ID
	Log(second)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Operation != "init" || !entries[0].IDCreated {
		t.Errorf("First entry = %+v, expected init with id_created", entries[0])
	}
	if entries[1].Operation != "path" || entries[1].SecretsPath == "" {
		t.Errorf("Second entry = %+v, expected path with secrets_path", entries[1])
	}
	if entries[0].Timestamp == "" || entries[0].Username == "" {
		t.Errorf("Entry missing timestamp or username: %+v", entries[0])
	}
}

func TestReadEntries_MissingLog(t *testing.T) {
	root := t.TempDir()
	t.Setenv(configs.SecretsRootEnv, root)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries for a missing log, got %d", len(entries))
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2025-01-01T00:00:00.000000Z","user":"alice","host":"dev","op":"init"}
this line is not JSON
{"ts":"2025-01-01T00:00:01.000000Z","user":"alice","host":"dev","op":"path"}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries after skipping the malformed line, got %d", len(entries))
	}
	if entries[0].Operation != "init" || entries[1].Operation != "path" {
		t.Errorf("Unexpected operations: %s, %s", entries[0].Operation, entries[1].Operation)
	}
}

func TestParseEntries_Empty(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestLog_NeverFailsTheOperation(t *testing.T) {
	// Point the root at a path that cannot be created.
	unwritable := t.TempDir()
	if err := os.Chmod(unwritable, 0o500); err != nil {
		t.Fatalf("Failed to chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(unwritable, 0o700) })
	t.Setenv(configs.SecretsRootEnv, unwritable+"/nested")

	// Must not panic and must not surface an error.
	Log(NewEntry("init"))
}
