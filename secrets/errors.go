package secrets

import "errors"

// Identifier errors indicate issues with the repository's identifier file.
var (
	// ErrMalformedIdentifier indicates the identifier file content is not a
	// valid identifier (wrong length, invalid characters, or extra tokens).
	ErrMalformedIdentifier = errors.New("malformed identifier")
)

// Access errors indicate issues reading from a secrets directory.
var (
	// ErrInvalidSecretPath indicates a secret name that would resolve outside
	// the secrets directory.
	ErrInvalidSecretPath = errors.New("invalid secret path")

	// ErrSecretNotFound indicates the requested secret file does not exist
	// within an existing secrets directory.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrInvalidExtension indicates a secret name without the extension the
	// read method expects.
	ErrInvalidExtension = errors.New("invalid file extension")

	// ErrNotInitialized indicates the repository or its secrets directory has
	// not been initialized. The library reports the uninitialized state as a
	// nil handle; command workflows return this error so the CLI can exit
	// non-zero.
	ErrNotInitialized = errors.New("secrets directory has not been initialized")
)
