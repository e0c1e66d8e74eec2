// File: token.go
// Title: Token Type
// Description: Defines the token value produced by the scanner. A token
//              is a kind plus a span and owns no text; two tokens are
//              equal exactly when kind and span match.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial token type

package token

import "fmt"

// Token is one lexical unit: a kind and the span of source bytes it was
// scanned from. Tokens never carry lexeme text; use Text with the original
// buffer to recover it.
type Token struct {
	Kind Kind
	Span Span
}

// Make builds a token covering [start, end).
func Make(kind Kind, start, end int) Token {
	return Token{Kind: kind, Span: Span{Start: start, End: end}}
}

// Text returns the lexeme from src without copying.
func (t Token) Text(src string) string {
	return t.Span.Text(src)
}

// LineCol derives the 1-based line and column of the token start in src.
func (t Token) LineCol(src string) (line, col int) {
	return t.Span.LineCol(src)
}

// String renders the token kind and span for debug output.
func (t Token) String() string {
	return fmt.Sprintf("%s%s", t.Kind, t.Span)
}
