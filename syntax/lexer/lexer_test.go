// File: lexer_test.go
// Title: Lexer Unit Tests
// Description: Tests for the scanner. Covers token streams for all kinds,
//              span correctness, compound operator lookahead, string
//              literal handling, the fixed word delimiter set, end of
//              input stability, and rescan determinism.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test suite

package lexer

import (
	"strings"
	"testing"

	"github.com/rofrol/singe/syntax/token"
)

func TestLexer_Next(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "simple let statement",
			input: "let answer = 42;",
			expected: []token.Token{
				token.Make(token.KindLet, 0, 3),
				token.Make(token.KindIdentifier, 4, 10),
				token.Make(token.KindAssign, 11, 12),
				token.Make(token.KindInteger, 13, 15),
				token.Make(token.KindSemicolon, 15, 16),
				token.Make(token.KindEndOfInput, 16, 16),
			},
		},
		{
			name:  "spaced comparison chain",
			input: "let x = 5 < 10 > 5;",
			expected: []token.Token{
				token.Make(token.KindLet, 0, 3),
				token.Make(token.KindIdentifier, 4, 5),
				token.Make(token.KindAssign, 6, 7),
				token.Make(token.KindInteger, 8, 9),
				token.Make(token.KindLess, 10, 11),
				token.Make(token.KindInteger, 12, 14),
				token.Make(token.KindGreater, 15, 16),
				token.Make(token.KindInteger, 17, 18),
				token.Make(token.KindSemicolon, 18, 19),
				token.Make(token.KindEndOfInput, 19, 19),
			},
		},
		{
			name:  "compound and simple operators",
			input: "== != <= >= = ! < >",
			expected: []token.Token{
				token.Make(token.KindEqual, 0, 2),
				token.Make(token.KindNotEqual, 3, 5),
				token.Make(token.KindLessEqual, 6, 8),
				token.Make(token.KindGreaterEqual, 9, 11),
				token.Make(token.KindAssign, 12, 13),
				token.Make(token.KindBang, 14, 15),
				token.Make(token.KindLess, 16, 17),
				token.Make(token.KindGreater, 18, 19),
				token.Make(token.KindEndOfInput, 19, 19),
			},
		},
		{
			name:  "fixed punctuation",
			input: "( ) { } [ ] ; , . : + - * / %",
			expected: []token.Token{
				token.Make(token.KindLParen, 0, 1),
				token.Make(token.KindRParen, 2, 3),
				token.Make(token.KindLBrace, 4, 5),
				token.Make(token.KindRBrace, 6, 7),
				token.Make(token.KindLBracket, 8, 9),
				token.Make(token.KindRBracket, 10, 11),
				token.Make(token.KindSemicolon, 12, 13),
				token.Make(token.KindComma, 14, 15),
				token.Make(token.KindDot, 16, 17),
				token.Make(token.KindColon, 18, 19),
				token.Make(token.KindPlus, 20, 21),
				token.Make(token.KindMinus, 22, 23),
				token.Make(token.KindStar, 24, 25),
				token.Make(token.KindSlash, 26, 27),
				token.Make(token.KindPercent, 28, 29),
				token.Make(token.KindEndOfInput, 29, 29),
			},
		},
		{
			name:  "all keywords",
			input: "fn let if else return true false nil for",
			expected: []token.Token{
				token.Make(token.KindFunc, 0, 2),
				token.Make(token.KindLet, 3, 6),
				token.Make(token.KindIf, 7, 9),
				token.Make(token.KindElse, 10, 14),
				token.Make(token.KindReturn, 15, 21),
				token.Make(token.KindTrue, 22, 26),
				token.Make(token.KindFalse, 27, 32),
				token.Make(token.KindNil, 33, 36),
				token.Make(token.KindFor, 37, 40),
				token.Make(token.KindEndOfInput, 40, 40),
			},
		},
		{
			name:  "string literal binding",
			input: `let a = "hello world";`,
			expected: []token.Token{
				token.Make(token.KindLet, 0, 3),
				token.Make(token.KindIdentifier, 4, 5),
				token.Make(token.KindAssign, 6, 7),
				token.Make(token.KindString, 8, 21),
				token.Make(token.KindSemicolon, 21, 22),
				token.Make(token.KindEndOfInput, 22, 22),
			},
		},
		{
			name:  "multiline statements",
			input: "let a = 1;\nlet b = 2;",
			expected: []token.Token{
				token.Make(token.KindLet, 0, 3),
				token.Make(token.KindIdentifier, 4, 5),
				token.Make(token.KindAssign, 6, 7),
				token.Make(token.KindInteger, 8, 9),
				token.Make(token.KindSemicolon, 9, 10),
				token.Make(token.KindLet, 11, 14),
				token.Make(token.KindIdentifier, 15, 16),
				token.Make(token.KindAssign, 17, 18),
				token.Make(token.KindInteger, 19, 20),
				token.Make(token.KindSemicolon, 20, 21),
				token.Make(token.KindEndOfInput, 21, 21),
			},
		},
		{
			name:  "mixed whitespace",
			input: "  \t let \r\n x \t",
			expected: []token.Token{
				token.Make(token.KindLet, 4, 7),
				token.Make(token.KindIdentifier, 11, 12),
				token.Make(token.KindEndOfInput, 14, 14),
			},
		},
		{
			name:  "semicolons only",
			input: ";;;",
			expected: []token.Token{
				token.Make(token.KindSemicolon, 0, 1),
				token.Make(token.KindSemicolon, 1, 2),
				token.Make(token.KindSemicolon, 2, 3),
				token.Make(token.KindEndOfInput, 3, 3),
			},
		},
		{
			name:  "empty input",
			input: "",
			expected: []token.Token{
				token.Make(token.KindEndOfInput, 0, 0),
			},
		},
		{
			name:  "keyword at end of input",
			input: "let",
			expected: []token.Token{
				token.Make(token.KindLet, 0, 3),
				token.Make(token.KindEndOfInput, 3, 3),
			},
		},
		{
			name:  "integer at end of input",
			input: "42",
			expected: []token.Token{
				token.Make(token.KindInteger, 0, 2),
				token.Make(token.KindEndOfInput, 2, 2),
			},
		},
		{
			name:  "minus dispatches at token start",
			input: "-5",
			expected: []token.Token{
				token.Make(token.KindMinus, 0, 1),
				token.Make(token.KindInteger, 1, 2),
				token.Make(token.KindEndOfInput, 2, 2),
			},
		},
		{
			name:  "plus splits words",
			input: "1+2",
			expected: []token.Token{
				token.Make(token.KindInteger, 0, 1),
				token.Make(token.KindPlus, 1, 2),
				token.Make(token.KindInteger, 2, 3),
				token.Make(token.KindEndOfInput, 3, 3),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := New(tt.input)

			for i, expected := range tt.expected {
				tok := lexer.Next()

				if tok.Kind != expected.Kind {
					t.Errorf("Token %d: expected kind %s, got %s", i, expected.Kind, tok.Kind)
				}
				if tok.Span.Start != expected.Span.Start {
					t.Errorf("Token %d: expected start %d, got %d", i, expected.Span.Start, tok.Span.Start)
				}
				if tok.Span.End != expected.Span.End {
					t.Errorf("Token %d: expected end %d, got %d", i, expected.Span.End, tok.Span.End)
				}
			}
		})
	}
}

// The word delimiter set excludes - * / % < > ! and the quote bytes, so
// unspaced runs absorb them into a single word. This boundary definition
// is a compatibility surface and must not drift.
func TestLexer_WordAbsorption(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "less-than absorbed without spaces",
			input: "5<10",
			expected: []token.Token{
				token.Make(token.KindIdentifier, 0, 4),
				token.Make(token.KindEndOfInput, 4, 4),
			},
		},
		{
			name:  "minus absorbed inside word",
			input: "a-b",
			expected: []token.Token{
				token.Make(token.KindIdentifier, 0, 3),
				token.Make(token.KindEndOfInput, 3, 3),
			},
		},
		{
			name:  "star absorbed inside word",
			input: "x*y",
			expected: []token.Token{
				token.Make(token.KindIdentifier, 0, 3),
				token.Make(token.KindEndOfInput, 3, 3),
			},
		},
		{
			name:  "assign still splits after absorbed bang",
			input: "a!=b",
			expected: []token.Token{
				token.Make(token.KindIdentifier, 0, 2),
				token.Make(token.KindAssign, 2, 3),
				token.Make(token.KindIdentifier, 3, 4),
				token.Make(token.KindEndOfInput, 4, 4),
			},
		},
		{
			name:  "dot splits words",
			input: "foo@bar.baz",
			expected: []token.Token{
				token.Make(token.KindIdentifier, 0, 7),
				token.Make(token.KindDot, 7, 8),
				token.Make(token.KindIdentifier, 8, 11),
				token.Make(token.KindEndOfInput, 11, 11),
			},
		},
		{
			name:  "double quote absorbed mid-word",
			input: `ab"cd`,
			expected: []token.Token{
				token.Make(token.KindIdentifier, 0, 5),
				token.Make(token.KindEndOfInput, 5, 5),
			},
		},
		{
			name:  "single quotes are word bytes",
			input: "'abc'",
			expected: []token.Token{
				token.Make(token.KindIdentifier, 0, 5),
				token.Make(token.KindEndOfInput, 5, 5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := New(tt.input)

			for i, expected := range tt.expected {
				tok := lexer.Next()

				if tok != expected {
					t.Errorf("Token %d: expected %s, got %s", i, expected, tok)
				}
			}
		})
	}
}

func TestLexer_Strings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []token.Token
	}{
		{
			name:  "empty string literal",
			input: `""`,
			expected: []token.Token{
				token.Make(token.KindString, 0, 2),
				token.Make(token.KindEndOfInput, 2, 2),
			},
		},
		{
			name:  "escaped quote does not close",
			input: `"a\"b"`,
			expected: []token.Token{
				token.Make(token.KindString, 0, 6),
				token.Make(token.KindEndOfInput, 6, 6),
			},
		},
		{
			name:  "unterminated string is illegal to end of buffer",
			input: `"abc`,
			expected: []token.Token{
				token.Make(token.KindIllegal, 0, 4),
				token.Make(token.KindEndOfInput, 4, 4),
			},
		},
		{
			name:  "lone quote is illegal",
			input: `"`,
			expected: []token.Token{
				token.Make(token.KindIllegal, 0, 1),
				token.Make(token.KindEndOfInput, 1, 1),
			},
		},
		{
			name:  "unterminated string after prefix",
			input: `let s = "oops`,
			expected: []token.Token{
				token.Make(token.KindLet, 0, 3),
				token.Make(token.KindIdentifier, 4, 5),
				token.Make(token.KindAssign, 6, 7),
				token.Make(token.KindIllegal, 8, 13),
				token.Make(token.KindEndOfInput, 13, 13),
			},
		},
		{
			// The look-back is a single byte: a quote after a backslash
			// never closes, even when that backslash is itself escaped.
			name:  "double backslash still blocks the closing quote",
			input: `"\\"`,
			expected: []token.Token{
				token.Make(token.KindIllegal, 0, 4),
				token.Make(token.KindEndOfInput, 4, 4),
			},
		},
		{
			name:  "escape sequences are not decoded",
			input: `"line\nbreak"`,
			expected: []token.Token{
				token.Make(token.KindString, 0, 13),
				token.Make(token.KindEndOfInput, 13, 13),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := New(tt.input)

			for i, expected := range tt.expected {
				tok := lexer.Next()

				if tok != expected {
					t.Errorf("Token %d: expected %s, got %s", i, expected, tok)
				}
			}
		})
	}
}

// Span text must reproduce the exact source bytes of every token.
func TestLexer_RoundTripText(t *testing.T) {
	input := `let greeting = "hello world";`
	expected := []string{"let", "greeting", "=", `"hello world"`, ";"}

	lexer := New(input)
	for i, want := range expected {
		tok := lexer.Next()
		if got := tok.Text(input); got != want {
			t.Errorf("Token %d: expected text %q, got %q", i, want, got)
		}
	}

	eoi := lexer.Next()
	if eoi.Kind != token.KindEndOfInput {
		t.Fatalf("expected END_OF_INPUT, got %s", eoi.Kind)
	}
	if got := eoi.Text(input); got != "" {
		t.Errorf("END_OF_INPUT: expected empty text, got %q", got)
	}
}

func TestLexer_CompoundWidth(t *testing.T) {
	// "<=" is one token of width two.
	lexer := New("<=")
	tok := lexer.Next()
	if tok.Kind != token.KindLessEqual {
		t.Errorf("expected LESS_EQUAL, got %s", tok.Kind)
	}
	if tok.Span.Width() != 2 {
		t.Errorf("expected width 2, got %d", tok.Span.Width())
	}

	// "< " is one token of width one.
	lexer = New("< ")
	tok = lexer.Next()
	if tok.Kind != token.KindLess {
		t.Errorf("expected LESS, got %s", tok.Kind)
	}
	if tok.Span.Width() != 1 {
		t.Errorf("expected width 1, got %d", tok.Span.Width())
	}

	// "<5" does not absorb the digit into the operator.
	lexer = New("<5")
	tok = lexer.Next()
	if tok.Kind != token.KindLess || tok.Span.Width() != 1 {
		t.Errorf("expected LESS of width 1, got %s", tok)
	}
	tok = lexer.Next()
	if tok.Kind != token.KindInteger {
		t.Errorf("expected INTEGER, got %s", tok.Kind)
	}
}

func TestLexer_EndOfInputStability(t *testing.T) {
	lexer := New("let")

	first := lexer.Next()
	if first.Kind != token.KindLet {
		t.Fatalf("expected LET, got %s", first.Kind)
	}

	for i := 0; i < 5; i++ {
		tok := lexer.Next()
		if tok.Kind != token.KindEndOfInput {
			t.Errorf("call %d: expected END_OF_INPUT, got %s", i, tok.Kind)
		}
		if tok.Span.Start != 3 || tok.Span.End != 3 {
			t.Errorf("call %d: expected span [3,3), got %s", i, tok.Span)
		}
	}
}

// Scanning is deterministic: two lexers over the same buffer produce
// identical token sequences.
func TestLexer_RescanDeterminism(t *testing.T) {
	input := "let a = 1;\nlet b = \"two\";\nfn(x) { return x; }"

	first := New(input)
	second := New(input)

	for i := 0; ; i++ {
		a := first.Next()
		b := second.Next()
		if a != b {
			t.Fatalf("Token %d: sequences diverge: %s vs %s", i, a, b)
		}
		if a.Kind == token.KindEndOfInput {
			break
		}
	}
}

func TestLexer_AtEnd(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty buffer", "", true},
		{"whitespace only", " \t\r\n ", true},
		{"pending token", "let", false},
		{"pending token after whitespace", "   x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lexer := New(tt.input)
			if got := lexer.AtEnd(); got != tt.expected {
				t.Errorf("AtEnd: expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLexer_AtEnd_DoesNotAdvance(t *testing.T) {
	lexer := New("let x ")

	lexer.Next()
	if lexer.AtEnd() {
		t.Error("expected AtEnd false with a token pending")
	}
	if got := lexer.Offset(); got != 3 {
		t.Errorf("AtEnd moved the cursor: expected offset 3, got %d", got)
	}

	lexer.Next()
	if !lexer.AtEnd() {
		t.Error("expected AtEnd true with only whitespace left")
	}
	if got := lexer.Offset(); got != 5 {
		t.Errorf("AtEnd moved the cursor: expected offset 5, got %d", got)
	}
}

func TestLexer_Accessors(t *testing.T) {
	input := "let x = 1;"
	lexer := New(input)

	if got := lexer.Source(); got != input {
		t.Errorf("Source: expected %q, got %q", input, got)
	}
	if got := lexer.Offset(); got != 0 {
		t.Errorf("Offset: expected 0, got %d", got)
	}

	lexer.Next()
	if got := lexer.Offset(); got != 3 {
		t.Errorf("Offset after LET: expected 3, got %d", got)
	}
}

// Benchmarks

func BenchmarkLexer_Statement(b *testing.B) {
	input := `let greeting = "hello world";`

	for i := 0; i < b.N; i++ {
		lexer := New(input)
		for {
			tok := lexer.Next()
			if tok.Kind == token.KindEndOfInput {
				break
			}
		}
	}
}

func BenchmarkLexer_Operators(b *testing.B) {
	input := "a == b != c <= d >= e < f > g ! h"

	for i := 0; i < b.N; i++ {
		lexer := New(input)
		for {
			tok := lexer.Next()
			if tok.Kind == token.KindEndOfInput {
				break
			}
		}
	}
}

func BenchmarkLexer_LongInput(b *testing.B) {
	input := strings.Repeat(`let item = "value"; `, 200)

	for i := 0; i < b.N; i++ {
		lexer := New(input)
		for {
			tok := lexer.Next()
			if tok.Kind == token.KindEndOfInput {
				break
			}
		}
	}
}
