// File: parser_test.go
// Title: Parser Unit Tests
// Description: Tests for statement recognition, per-expectation aborts,
//              diagnostic formatting, stream desynchronization, and
//              forward progress on malformed input.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test suite

package parser

import (
	"testing"

	"github.com/rofrol/singe/syntax/ast"
	"github.com/rofrol/singe/syntax/lexer"
	"github.com/rofrol/singe/syntax/token"
)

func newTestParser(src string) (*Parser, *lexer.Lexer, *DiagnosticSink) {
	lx := lexer.New(src)
	sink := NewDiagnosticSink()
	return New(lx, sink, Options{}), lx, sink
}

func TestParser_LetStatement(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantName    string
		wantValue   string
		wantKind    token.Kind
	}{
		{
			name:      "integer binding",
			input:     "let answer = 42;",
			wantName:  "answer",
			wantValue: "42",
			wantKind:  token.KindInteger,
		},
		{
			name:      "string binding",
			input:     `let a = "hello world";`,
			wantName:  "a",
			wantValue: `"hello world"`,
			wantKind:  token.KindString,
		},
		{
			name:      "single letter name",
			input:     "let x = 0;",
			wantName:  "x",
			wantValue: "0",
			wantKind:  token.KindInteger,
		},
		{
			name:      "empty string literal",
			input:     `let s = "";`,
			wantName:  "s",
			wantValue: `""`,
			wantKind:  token.KindString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, sink := newTestParser(tt.input)

			stmt := p.Next()
			if stmt == nil {
				t.Fatalf("expected a statement, got nil (diagnostics: %v)", sink.Messages())
			}
			if sink.Len() != 0 {
				t.Errorf("expected no diagnostics, got %v", sink.Messages())
			}

			let, ok := stmt.(*ast.LetStatement)
			if !ok {
				t.Fatalf("expected *ast.LetStatement, got %T", stmt)
			}
			if got := let.Name.Text(tt.input); got != tt.wantName {
				t.Errorf("expected name %q, got %q", tt.wantName, got)
			}

			lit, ok := let.Value.(*ast.Literal)
			if !ok {
				t.Fatalf("expected *ast.Literal value, got %T", let.Value)
			}
			if lit.Token.Kind != tt.wantKind {
				t.Errorf("expected literal kind %s, got %s", tt.wantKind, lit.Token.Kind)
			}
			if got := lit.Token.Text(tt.input); got != tt.wantValue {
				t.Errorf("expected literal %q, got %q", tt.wantValue, got)
			}
		})
	}
}

func TestParser_Mismatches(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{
			name:    "statement must start with let",
			input:   "foo",
			wantMsg: "expected LET, got IDENTIFIER at line 1, column 1",
		},
		{
			name:    "semicolon cannot start a statement",
			input:   ";;;",
			wantMsg: "expected LET, got SEMICOLON at line 1, column 1",
		},
		{
			name:    "empty input still reports",
			input:   "",
			wantMsg: "expected LET, got END_OF_INPUT at line 1, column 1",
		},
		{
			name:    "binding name must be an identifier",
			input:   "let 5 = 1;",
			wantMsg: "expected IDENTIFIER, got INTEGER at line 1, column 5",
		},
		{
			name:    "keyword cannot be a binding name",
			input:   "let let = 1;",
			wantMsg: "expected IDENTIFIER, got LET at line 1, column 5",
		},
		{
			name:    "assign must follow the name",
			input:   "let x 5;",
			wantMsg: "expected ASSIGN, got INTEGER at line 1, column 7",
		},
		{
			name:    "value must be a literal",
			input:   "let x = fn;",
			wantMsg: "expected INTEGER or STRING, got FUNC at line 1, column 9",
		},
		{
			name:    "true is not a literal value here",
			input:   "let x = true;",
			wantMsg: "expected INTEGER or STRING, got TRUE at line 1, column 9",
		},
		{
			name:    "missing value before semicolon",
			input:   "let x = ;",
			wantMsg: "expected INTEGER or STRING, got SEMICOLON at line 1, column 9",
		},
		{
			name:    "unterminated string value is illegal",
			input:   `let s = "oops`,
			wantMsg: "expected INTEGER or STRING, got ILLEGAL at line 1, column 9",
		},
		{
			name:    "missing semicolon at end of input",
			input:   "let a = 12",
			wantMsg: "expected SEMICOLON, got END_OF_INPUT at line 1, column 11",
		},
		{
			name:    "next keyword instead of semicolon",
			input:   "let a = 1 let",
			wantMsg: "expected SEMICOLON, got LET at line 1, column 11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, sink := newTestParser(tt.input)

			stmt := p.Next()
			if stmt != nil {
				t.Fatalf("expected nil statement, got %s", stmt)
			}
			if sink.Len() != 1 {
				t.Fatalf("expected exactly 1 diagnostic, got %d: %v", sink.Len(), sink.Messages())
			}
			if got := sink.Messages()[0]; got != tt.wantMsg {
				t.Errorf("expected diagnostic %q, got %q", tt.wantMsg, got)
			}
		})
	}
}

func TestParser_MultiStatement(t *testing.T) {
	input := "let a = 1; let b = 2;"
	p, lx, sink := newTestParser(input)

	first := p.Next()
	if first == nil {
		t.Fatalf("first statement: got nil (diagnostics: %v)", sink.Messages())
	}
	if got := first.(*ast.LetStatement).Name.Text(input); got != "a" {
		t.Errorf("first statement: expected name a, got %q", got)
	}

	second := p.Next()
	if second == nil {
		t.Fatalf("second statement: got nil (diagnostics: %v)", sink.Messages())
	}
	if got := second.(*ast.LetStatement).Name.Text(input); got != "b" {
		t.Errorf("second statement: expected name b, got %q", got)
	}

	if sink.Len() != 0 {
		t.Errorf("expected no diagnostics, got %v", sink.Messages())
	}
	if !lx.AtEnd() {
		t.Error("expected the token stream to be exhausted")
	}
}

func TestParser_PositionOnLaterLine(t *testing.T) {
	input := "let a = 1;\nfoo"
	p, _, sink := newTestParser(input)

	if stmt := p.Next(); stmt == nil {
		t.Fatalf("first statement: got nil (diagnostics: %v)", sink.Messages())
	}

	if stmt := p.Next(); stmt != nil {
		t.Fatalf("expected nil statement, got %s", stmt)
	}
	want := "expected LET, got IDENTIFIER at line 2, column 1"
	if got := sink.Messages()[0]; got != want {
		t.Errorf("expected diagnostic %q, got %q", want, got)
	}
}

// A malformed statement consumes its offending token, so the stream can
// desynchronize: the tokens left behind produce further diagnostics until
// the next let keyword lines up again.
func TestParser_DesyncCascade(t *testing.T) {
	input := "let a 1; let b = 2;"
	p, _, sink := newTestParser(input)

	if stmt := p.Next(); stmt != nil {
		t.Fatalf("expected nil for malformed statement, got %s", stmt)
	}
	if sink.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", sink.Messages())
	}

	// The stray semicolon left behind fails the next call.
	if stmt := p.Next(); stmt != nil {
		t.Fatalf("expected nil for stray semicolon, got %s", stmt)
	}
	if sink.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", sink.Messages())
	}

	// The stream resynchronizes at the second let.
	stmt := p.Next()
	if stmt == nil {
		t.Fatalf("expected recovery at second let (diagnostics: %v)", sink.Messages())
	}
	if got := stmt.(*ast.LetStatement).Name.Text(input); got != "b" {
		t.Errorf("expected name b after resync, got %q", got)
	}
	if sink.Len() != 2 {
		t.Errorf("expected no further diagnostics, got %v", sink.Messages())
	}
}

// Every Next call consumes at least one token, so a driver that checks
// the scanner between calls always terminates, even on garbage input.
func TestParser_ForwardProgress(t *testing.T) {
	input := "( ( very broken ( input"
	p, lx, sink := newTestParser(input)

	calls := 0
	for !lx.AtEnd() {
		if p.Next() != nil {
			t.Fatal("garbage input must not produce statements")
		}
		calls++
		if calls > 100 {
			t.Fatal("driver loop failed to terminate")
		}
	}

	if calls != 6 {
		t.Errorf("expected 6 calls to drain 6 tokens, got %d", calls)
	}
	if sink.Len() != 6 {
		t.Errorf("expected 6 diagnostics, got %d", sink.Len())
	}
}

func TestParser_NilDoesNotDistinguishExhaustion(t *testing.T) {
	// Next reports nil both for a diagnostic and for exhausted input; the
	// scanner probe is the only way to tell them apart.
	p, lx, sink := newTestParser("")

	if stmt := p.Next(); stmt != nil {
		t.Fatalf("expected nil at end of input, got %s", stmt)
	}
	if sink.Len() != 1 {
		t.Errorf("expected the end-of-input pull to report, got %d diagnostics", sink.Len())
	}
	if !lx.AtEnd() {
		t.Error("expected AtEnd true on empty input")
	}
}

// Benchmarks

func BenchmarkParser_Statement(b *testing.B) {
	input := `let greeting = "hello world";`

	for i := 0; i < b.N; i++ {
		lx := lexer.New(input)
		p := New(lx, NewDiagnosticSink(), Options{})
		if p.Next() == nil {
			b.Fatal("parse failed")
		}
	}
}

func BenchmarkParser_Program(b *testing.B) {
	input := "let a = 1; let b = 2; let c = 3; let d = 4;"

	for i := 0; i < b.N; i++ {
		lx := lexer.New(input)
		p := New(lx, NewDiagnosticSink(), Options{})
		for !lx.AtEnd() {
			p.Next()
		}
	}
}
