// Package logging provides structured logging for csvtext.
//
// This package wraps the zap logger with convenience functions for the
// events csvtext cares about: datasets loaded, bindings dropped, cursor
// transitions and hand-offs to the messaging app or clipboard.
//
// # Log Levels
//
//   - Debug: cursor transitions, binding changes
//   - Info: dataset loads, session starts, hand-offs
//   - Warn: parse warnings, dropped bindings, failed hand-offs
//   - Error: startup failures
//
// # Privacy
//
// Helpers in this package never take phone numbers or message bodies. Log
// row indices, counts and column names only.
//
// # Configuration
//
// Logging is silent unless a level is passed to Initialize or the
// CSVTEXT_LOG_LEVEL environment variable is set. The interactive wizard owns
// the terminal, so it sends logs to a file:
//
//	if err := logging.Initialize("debug", "/tmp/csvtext.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
