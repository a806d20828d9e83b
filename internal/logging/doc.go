// Package logger provides leveled, color-prefixed logging for envseal CLI
// commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only critical warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()            // Shown with --verbose or --debug
//	Logger.Debugf()           // Shown only with --debug
//	Logger.Warnf()            // Shown with --verbose or --debug
//	Logger.WarnfAlways()      // Always shown (critical warnings)
//	Logger.Errorf()           // Always shown
//	Logger.ErrorfAndReturn()  // Logs, then returns the error
//
// Commands create a logger in their PersistentPreRun and pass it to
// internal functions.
package logger
