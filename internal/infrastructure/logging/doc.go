// Package logging provides structured logging using uber/zap.
//
// This package offers production-ready logging with two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The mutation engine logs batch lifecycle events at info, per-item failures
// at debug, and listener-hook problems at warn. Listener failures are never
// surfaced to callers as operation failures; the log is their only trace.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("batch finished", zap.String("batch_id", id), zap.Int("failures", n))
package logging
