// File: messages.go
// Title: REPL Message Types
// Description: Transcript entry and message types for async operations
//              in the interactive session.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial message types

package repl

// entry is one submitted line together with its rendered outcome.
type entry struct {
	input  string
	result string
}

// evalResultMsg is sent when a submitted line has been scanned and parsed.
type evalResultMsg struct {
	entry entry
}
