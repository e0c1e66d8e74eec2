// File: doc.go
// Title: Syntax Package Documentation
// Description: Implements the lexical scanner, token model, and statement
//              parser for the singe language front end, plus the Session
//              facade that wires them together over one source buffer.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial session facade

/*
Package syntax wires the lexer, parser, and diagnostic sink into parsing sessions.

Package: syntax
Title: Syntax Session Facade
Description: Provides the Session type, the entry point for scanning and
             parsing source buffers. A Session owns one lexer, one parser,
             and one diagnostic sink; subpackages carry the pieces for
             callers that want to assemble them differently.
Author: rofrol
Version: v0.1.0
Created: 2026-08-19
Modified: 2026-08-19

Change History:
- 2026-08-19 v0.1.0: Initial session facade

Key Features:
  • One-call session setup over a source buffer
  • Statement-at-a-time parsing or a single ParseAll pass
  • Token dumps through a fresh scan that leaves the parse cursor alone
  • Accumulated diagnostics, drainable without consuming
  • Session-scoped structured logging with minted session ids

# Basic Usage

	session := syntax.NewSession(`let answer = 42;`, syntax.Options{})
	defer session.Close()

	statements := session.ParseAll()
	if session.Diagnostics().Len() > 0 {
		session.WriteDiagnostics(os.Stderr)
	}

# Token Scanning

	for _, tok := range session.Tokens() {
		line, col := tok.LineCol(session.Source())
		fmt.Printf("%-16s %s at %d:%d\n", tok.Kind, tok.Span, line, col)
	}

The subpackages divide the work:

  - syntax/token: spans, token kinds, keyword classification
  - syntax/lexer: the byte-oriented scanner
  - syntax/ast: statement and expression nodes
  - syntax/parser: the statement parser and diagnostic sink
*/
package syntax
