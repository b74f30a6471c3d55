package secrets

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateID_Unique(t *testing.T) {
	const n = 10000

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := GenerateID()
		if seen[id.String()] {
			t.Fatalf("Duplicate identifier generated after %d iterations: %s", i, id)
		}
		seen[id.String()] = true
	}
}

func TestGenerateID_Canonical(t *testing.T) {
	id := GenerateID()

	if len(id.String()) != encodedIDLength {
		t.Errorf("Expected %d characters, got %d: %s", encodedIDLength, len(id.String()), id)
	}
	if id.String() != strings.ToLower(id.String()) {
		t.Errorf("Expected lowercase encoding, got: %s", id)
	}

	// A generated identifier must round-trip through ParseID.
	parsed, err := ParseID(id.String())
	if err != nil {
		t.Fatalf("ParseID rejected a generated identifier: %v", err)
	}
	if parsed != id {
		t.Errorf("Round-trip changed identifier: %s != %s", parsed, id)
	}
}

func TestParseID_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"TooShort", "1234"},
		{"TooLong", "8095f7d2-73c7-4389-9056-b82b0649e44c-extra"},
		{"NoHyphens", "8095f7d273c743899056b82b0649e44c"},
		{"Uppercase", "8095F7D2-73C7-4389-9056-B82B0649E44C"},
		{"InvalidCharacters", "8095f7d2-73c7-4389-9056-b82b0649e44z"},
		{"Braces", "{8095f7d2-73c7-4389-9056-b82b0649e44c}"},
		{"TwoTokens", "8095f7d2-73c7-4389-9056-b82b0649e44c 8095f7d2-73c7-4389-9056-b82b0649e44d"},
		{"EmbeddedNewline", "8095f7d2-73c7-4389-\n9056-b82b0649e44c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseID(tc.input)
			if err == nil {
				t.Fatalf("ParseID(%q) succeeded, expected error", tc.input)
			}
			if !errors.Is(err, ErrMalformedIdentifier) {
				t.Errorf("ParseID(%q) error = %v, expected ErrMalformedIdentifier", tc.input, err)
			}
		})
	}
}

func TestParseID_Valid(t *testing.T) {
	const input = "8095f7d2-73c7-4389-9056-b82b0649e44c"

	id, err := ParseID(input)
	if err != nil {
		t.Fatalf("ParseID(%q) failed: %v", input, err)
	}
	if id.String() != input {
		t.Errorf("ParseID(%q) = %s, expected input preserved verbatim", input, id)
	}
	if id.IsZero() {
		t.Error("Parsed identifier reported IsZero")
	}
}

func TestMustParseID_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseID did not panic on invalid input")
		}
	}()
	MustParseID("not-an-identifier")
}

func TestID_ZeroValue(t *testing.T) {
	var id ID
	if !id.IsZero() {
		t.Error("Zero-value ID did not report IsZero")
	}
}
