// File: doc.go
// Title: Lexer Package Documentation
// Description: Documents the lexer package, which scans source buffers
//              into span token streams.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial scanner implementation

/*
Package lexer implements the byte-oriented scanner.

A Lexer binds one borrowed source buffer and produces exactly one token
per Next call, advancing a single cursor. Scanning is purely byte-wise:
no decoding, no allocation per token, no validation of literal contents.
After the buffer is exhausted Next keeps returning a zero-width
END_OF_INPUT token at the final offset, so pull loops need no separate
done flag.

Scanning rules:
  • Insignificant whitespace (space, tab, CR, newline) separates tokens
  • Fixed punctuation dispatches on a single byte; = < > ! look one byte
    ahead for a compound operator
  • String literals run from quote to quote, with a single-character
    look-back so a backslash-escaped quote does not close the literal;
    an unterminated literal becomes ILLEGAL through the end of the buffer
  • Everything else scans as a maximal run of non-delimiter bytes and is
    classified as a keyword, integer, or identifier

The word delimiter set is fixed for compatibility and excludes several
operator bytes, so unspaced runs such as 5<10 scan as one identifier.
Tokens are spans; use the buffer passed to New to resolve their text.
*/
package lexer
