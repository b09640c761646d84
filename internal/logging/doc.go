// Package logging provides structured logging utilities for eventscout.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Consistent attribute naming across the codebase
//   - Credential sanitization for safe logging
//   - Logger adapter interface for flexibility
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "calendar_list_events")
//	logger.Info("listing events",
//	    logging.Status("success"))
//
// Sanitize sensitive data before logging:
//
//	logger.Debug("using token",
//	    "token", logging.SanitizeToken(token))
//
// Bearer tokens and API keys are never logged directly; only a length
// indicator appears in output.
package logging
