// Package workflows contains the orchestration logic behind Pūnga CLI
// commands.
//
// Each workflow is a pure-Go function that takes a context and an options
// struct, performs the operation using the secrets, configs, and audit
// packages, and returns a result struct. The cmd package handles all
// presentation (spinners, colors, messages); workflows never print.
//
// # Available Workflows
//
//   - Init: bind a repository to a secrets directory and create it
//   - Path: resolve the current repository's secrets directory
//   - ReadSecret: read one secret file through the accessor
//
// # Error Handling
//
// Workflows return sentinel errors from the secrets package where the
// condition is structural (secrets.ErrNotInitialized,
// secrets.ErrMalformedIdentifier, secrets.ErrSecretNotFound), and wrapped
// I/O errors otherwise. The CLI layer branches on these with errors.Is to
// produce user-facing messages.
package workflows
