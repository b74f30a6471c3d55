// Package secrets binds a repository to a private secrets directory kept
// outside the repository, and provides safe read access to it.
//
// A repository is bound by a single identifier file checked into its root.
// The identifier maps deterministically to a directory under a per-user base
// root, so secret files never live inside the repository and can never be
// committed by accident.
//
// # Identifier
//
// An identifier is an opaque random token, encoded as a canonical lowercase
// UUID. It is generated once by `punga init`, persisted verbatim in the
// identifier file (.punga_id), and never modified afterward. Two repositories
// generating identifiers independently collide with negligible probability,
// so the identifier text is used directly as the directory name.
//
// # Layout
//
// Secrets directories live under a configurable base root:
//
//	<base-root>/<identifier>/api_key.txt
//	<base-root>/<identifier>/service.json
//
// The base root defaults to the user's local data directory and can be
// overridden with the PUNGA_ROOT environment variable or the user config
// file. For a fixed root and identifier, resolution is pure and
// deterministic.
//
// # Access
//
// Host programs obtain a handle with FromID. A nil handle means the
// directory has not been initialized yet, which is an expected state rather
// than an error. All reads go through the handle, which rejects any relative
// name that would resolve outside the secrets directory before touching the
// filesystem.
//
// # Binding at build time
//
// The `punga embed` generator reads and validates the identifier file and
// emits a Go source file declaring the bound identifier, so a program never
// runs without one. See the cmd package for details.
package secrets
