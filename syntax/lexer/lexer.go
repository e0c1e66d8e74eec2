// File: lexer.go
// Title: Lexical Analyzer (Scanner)
// Description: Implements the byte-oriented scanner. Converts a source
//              buffer into a stream of span tokens, one per call, with
//              single-byte dispatch for punctuation, one byte of lookahead
//              for the compound comparison operators, and maximal-munch
//              scanning for words and string literals.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial scanner implementation

package lexer

import (
	"github.com/rofrol/singe/syntax/token"
)

// Lexer scans a borrowed source buffer from left to right. The zero
// cursor advances monotonically; the buffer is never modified or copied.
// A Lexer is not safe for concurrent use, but independent Lexers over
// independent buffers are.
type Lexer struct {
	src string
	off int
}

// New creates a Lexer over src with the cursor at offset zero.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Next scans and returns exactly one token, advancing the cursor past it.
// It never blocks. Once the end of the buffer is reached, every further
// call returns a zero-width END_OF_INPUT token at the final offset.
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()

	if l.off >= len(l.src) {
		return token.Make(token.KindEndOfInput, l.off, l.off)
	}

	switch l.src[l.off] {
	case '(':
		return l.emit(token.KindLParen, 1)
	case ')':
		return l.emit(token.KindRParen, 1)
	case '{':
		return l.emit(token.KindLBrace, 1)
	case '}':
		return l.emit(token.KindRBrace, 1)
	case '[':
		return l.emit(token.KindLBracket, 1)
	case ']':
		return l.emit(token.KindRBracket, 1)
	case ';':
		return l.emit(token.KindSemicolon, 1)
	case ',':
		return l.emit(token.KindComma, 1)
	case '.':
		return l.emit(token.KindDot, 1)
	case ':':
		return l.emit(token.KindColon, 1)
	case '+':
		return l.emit(token.KindPlus, 1)
	case '-':
		return l.emit(token.KindMinus, 1)
	case '*':
		return l.emit(token.KindStar, 1)
	case '/':
		return l.emit(token.KindSlash, 1)
	case '%':
		return l.emit(token.KindPercent, 1)
	case '=':
		if l.peekChar() == '=' {
			return l.emit(token.KindEqual, 2)
		}
		return l.emit(token.KindAssign, 1)
	case '<':
		if l.peekChar() == '=' {
			return l.emit(token.KindLessEqual, 2)
		}
		return l.emit(token.KindLess, 1)
	case '>':
		if l.peekChar() == '=' {
			return l.emit(token.KindGreaterEqual, 2)
		}
		return l.emit(token.KindGreater, 1)
	case '!':
		if l.peekChar() == '=' {
			return l.emit(token.KindNotEqual, 2)
		}
		return l.emit(token.KindBang, 1)
	case '"':
		return l.readString()
	default:
		return l.readWord()
	}
}

// Source returns the buffer the Lexer scans.
func (l *Lexer) Source() string {
	return l.src
}

// Offset returns the current cursor position in bytes.
func (l *Lexer) Offset() int {
	return l.off
}

// AtEnd reports whether only whitespace remains before the end of the
// buffer. It looks ahead without moving the cursor, so callers can probe
// for exhaustion between Next calls.
func (l *Lexer) AtEnd() bool {
	for i := l.off; i < len(l.src); i++ {
		if !isWhitespace(l.src[i]) {
			return false
		}
	}
	return true
}

// skipWhitespace advances the cursor past a maximal run of insignificant
// whitespace.
func (l *Lexer) skipWhitespace() {
	for l.off < len(l.src) && isWhitespace(l.src[l.off]) {
		l.off++
	}
}

// peekChar returns the byte after the cursor, or 0 at the end of the
// buffer. The compound operators == <= >= != are the only tokens that
// need it.
func (l *Lexer) peekChar() byte {
	if l.off+1 >= len(l.src) {
		return 0
	}
	return l.src[l.off+1]
}

// emit produces a fixed-width token at the cursor and advances past it.
func (l *Lexer) emit(kind token.Kind, width int) token.Token {
	tok := token.Make(kind, l.off, l.off+width)
	l.off += width
	return tok
}

// readString scans a string literal starting at the opening quote under
// the cursor. A quote immediately preceded by a backslash does not close
// the literal; escape sequences are not decoded otherwise. A terminated
// literal spans both quotes inclusive. If the buffer ends first, the
// token is ILLEGAL and spans from the opening quote to the end of the
// buffer.
func (l *Lexer) readString() token.Token {
	start := l.off
	for i := l.off + 1; i < len(l.src); i++ {
		if l.src[i] == '"' && l.src[i-1] != '\\' {
			l.off = i + 1
			return token.Make(token.KindString, start, l.off)
		}
	}
	l.off = len(l.src)
	return token.Make(token.KindIllegal, start, l.off)
}

// readWord scans a maximal run of non-delimiter bytes and classifies it
// as a keyword, integer, or identifier. The delimiter set is fixed and
// deliberately excludes - * / % < > ! and the quote characters, so an
// unspaced run like 5<10 scans as one word; this boundary definition is
// part of the language's compatibility surface.
func (l *Lexer) readWord() token.Token {
	start := l.off
	for l.off < len(l.src) && !isWordDelimiter(l.src[l.off]) {
		l.off++
	}
	return token.Make(token.Classify(l.src[start:l.off]), start, l.off)
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isWordDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', ';', '(', ')', '{', '}', '[', ']', ',', '.', ':', '+', '=':
		return true
	}
	return false
}
