package secrets

import (
	"fmt"

	"github.com/google/uuid"
)

// encodedIDLength is the length of a canonically encoded identifier:
// a lowercase, hyphenated UUID.
const encodedIDLength = 36

// ID is an opaque identifier binding a repository to its secrets directory.
//
// An ID is immutable after creation and its text form is filesystem-safe, so
// it is used verbatim as a directory name. The zero value is not a valid
// identifier.
type ID struct {
	text string
}

// GenerateID returns a fresh random identifier.
//
// Identifiers are version 4 UUIDs drawn from a cryptographically strong
// random source, so independently generated values collide with negligible
// probability.
func GenerateID() ID {
	return ID{text: uuid.NewString()}
}

// ParseID validates s as a canonically encoded identifier.
//
// Only the exact form produced by GenerateID is accepted: 36 characters,
// lowercase, hyphenated. Anything else fails with ErrMalformedIdentifier.
func ParseID(s string) (ID, error) {
	if len(s) != encodedIDLength {
		return ID{}, fmt.Errorf("%w: expected %d characters, got %d", ErrMalformedIdentifier, encodedIDLength, len(s))
	}

	parsed, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %v", ErrMalformedIdentifier, err)
	}

	// uuid.Parse is lenient about case; identifiers are canonical only.
	if parsed.String() != s {
		return ID{}, fmt.Errorf("%w: identifier is not in canonical form", ErrMalformedIdentifier)
	}

	return ID{text: s}, nil
}

// MustParseID is like ParseID but panics on invalid input.
//
// It is intended for code generated by `punga embed`, which has already
// validated the identifier file when the build ran.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the identifier's canonical text form.
func (id ID) String() string {
	return id.text
}

// IsZero reports whether id is the zero value rather than a generated or
// parsed identifier.
func (id ID) IsZero() bool {
	return id.text == ""
}
