// File: doc.go
// Title: Token Package Documentation
// Description: Documents the token package, which defines the token kinds,
//              span representation, and word classification shared by the
//              scanner and parser.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial token package

/*
Package token defines the lexical vocabulary of the language.

A token is a kind paired with a half-open byte span into the source buffer.
Tokens own no text; lexemes and line/column positions are derived from the
span against the original buffer on demand, so token streams stay cheap to
produce, copy, and compare.

The package provides:
  • The closed Kind set with stable display names for diagnostics
  • Span, the half-open byte range with text and line/column derivation
  • Classify, the keyword / integer / identifier word classification
*/
package token
