// Package audit provides audit trail logging for Pūnga operations.
//
// Every binding operation (init, path, read) is recorded in a per-user
// audit log, so a developer can see which repositories were bound and when
// their secrets directories were touched.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at the
// secrets base root:
//
//	<base-root>/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - System username and hostname
//   - Operation name
//   - Operation-specific details (identifier, resolved path, secret name)
//
// # Usage
//
// Create an entry with user info pre-populated:
//
//	entry := audit.NewEntry("init")
//	entry.ID = id.String()
//	audit.Log(entry)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error. Operations should never
// fail just because audit logging failed.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
