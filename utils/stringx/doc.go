// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string helpers shared across
//              the singe toolchain.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial implementation

// Package stringx provides extended string operations for the singe toolchain.
//
// Package: stringx
// Title: Extended String Operations
// Description: Small string utilities that extend the Go standard library
//              with the operations the toolchain needs repeatedly: blank
//              checks for validation, padding for aligned terminal output,
//              Unicode-safe truncation, and line splitting across the
//              common line ending conventions.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Overview
//
// The package keeps to a deliberately small surface. The predicates come in
// positive and negative pairs, and the default-value chains mirror them
// (FirstNonEmpty for the empty checks, FirstNonBlank for the blank checks).
//
// Key capabilities:
//   - Empty and blank checks (IsEmpty, IsBlank and their inverses)
//   - Unicode-safe truncation with ellipsis (Truncate)
//   - Padding for column-aligned output (PadLeft, PadRight)
//   - Line splitting across \n, \r\n, and \r conventions (SplitLines)
//   - Default-value chains (FirstNonEmpty, FirstNonBlank)
//
// Usage
//
//	if stringx.IsBlank(path) {
//		return errors.New("path required")
//	}
//
//	fmt.Println(stringx.PadRight(kind, 16, ' '), lexeme)
package stringx
