// Package error provides structured error handling for the singe toolchain.
//
// Package: error
// Title: Structured Error Handling
// Description: This package implements a structured error type with error
//              codes, severity levels, contextual details, and cause
//              chains. It integrates with the logging package so errors
//              carry their context into structured log output.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes with category mapping
// - Severity levels derived from codes by default
// - Stack trace capture for debugging
// - JSON marshalling for structured logging
//
// Usage:
//   import singeerror "github.com/rofrol/singe/core/error"
//
//   // Create a new error with context
//   err := singeerror.New("config file not readable").
//     WithCode(singeerror.CodeConfigError).
//     WithDetail("path", "/etc/singe/singe.toml")
//
//   // Wrap an existing error with context
//   wrapped := singeerror.Wrap(err, "startup failed").
//     WithOperation("load-config")
//
//   // Check error codes
//   if singeerror.HasCode(err, singeerror.CodeConfigError) {
//     // Handle configuration errors specifically
//   }
package error
