// Package logger provides leveled logging for Pūnga CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown, [warn] prefix
//	Logger.WarnfAlways()     // Always shown, user-facing Warning: prefix
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Logs and returns the error for RunE
//	Logger.Fatalf()          // Always shown, then exits
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Resolved secrets directory: %s", path)
//
// Commands create a logger in their PersistentPreRun and pass it to
// internal functions.
package logger
