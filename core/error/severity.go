// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the default
//              mapping from error codes to severities.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed user input, a file that does not exist
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a config file that fails to load, oversized input
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: internal invariant violations
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the program unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an
// error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeIOError, CodeSourceTooLarge:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange,
		CodeSyntax, CodeUnterminatedString:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
