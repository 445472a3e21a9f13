// Package logging provides structured logging for sensorwatch.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging across the entire application.
//
// # Features
//
//   - Text output for interactive use (human-readable)
//   - JSON output when log collection is wanted (machine-parsable)
//   - Default fields (service, version) on all log entries
//   - Level-based filtering (debug, info, warn, error)
//   - Thread-safe for concurrent use
//
// # Output separation
//
// Logs go to stderr by default. Sensor reports are written to stdout by
// the report package, so the two streams can be redirected independently:
//
//	sensorwatch 2>connection.log
//
// # Configuration
//
// Logging is configured via the LoggingConfig in config.yaml:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "text"     # text, json
//	  output: "stderr"   # stderr, stdout
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("connected", "broker", "localhost:1883")
//	logger.Error("subscribe failed", "error", err)
package logging
