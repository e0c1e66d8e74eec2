// Package log provides structured logging for the singe toolchain.
//
// Package: log
// Title: Structured Logging
// Description: This package implements a structured logging system with
//              log levels, contextual fields, session IDs, and multiple
//              output formats. It integrates with the error package so
//              structured errors log with their codes and severities.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial implementation with structured logging
//
// Features:
// - Structured logging with JSON, text, and colored console formats
// - Log levels with filtering
// - Contextual logging with session IDs and custom fields
// - Immutable With-style configuration cloning
// - Severity-aware logging of structured errors
//
// Usage:
//   import singelog "github.com/rofrol/singe/core/log"
//
//   // Create a logger with context
//   logger := singelog.New().
//     WithLevel(singelog.LevelDebug).
//     WithFormat(singelog.FormatConsole).
//     WithField("component", "scanner")
//
//   // Log messages with different levels
//   logger.Info("session started", singelog.Field("source_bytes", 124))
//   logger.ErrorWithErr("config load failed", err)
//   logger.Debug("token scanned", singelog.Fields{
//     "kind":   "IDENTIFIER",
//     "offset": 42,
//   })
package log
