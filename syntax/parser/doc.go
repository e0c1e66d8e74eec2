// File: doc.go
// Title: Parser Package Documentation
// Description: Documents the parser package, which turns token streams
//              into statements and collects diagnostics.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial parser implementation

/*
Package parser implements the recursive descent statement parser.

The grammar is small: a program is a sequence of let bindings whose
right-hand side is an integer or string literal. Next parses one statement
per call by pulling tokens straight from the scanner; there is no token
buffer and no backtracking. A failed expectation appends one formatted
message to the DiagnosticSink and aborts the statement with the offending
token already consumed, so parsing always moves forward even on malformed
input. Recovery is coarse: after an abort the stream may desynchronize
until the next let keyword comes up.

Next returns nil both after a diagnostic and at the end of input. The
parser does not distinguish the two; drivers probe the scanner's AtEnd
between calls.

Diagnostics are plain ordered strings. The sink writes them out through
io.WriterTo without consuming them, so they can be rendered repeatedly.
*/
package parser
