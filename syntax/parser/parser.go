// File: parser.go
// Title: Recursive Descent Parser
// Description: Implements the statement parser over the scanner's token
//              stream. Recognizes let bindings with literal right-hand
//              sides, appending one diagnostic per failed expectation and
//              never rewinding the token stream.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-18 v0.1.0: Initial parser implementation
// - 2026-08-19 v0.1.0: Component logging on aborted productions

package parser

import (
	"fmt"
	"strings"

	singelog "github.com/rofrol/singe/core/log"
	"github.com/rofrol/singe/syntax/ast"
	"github.com/rofrol/singe/syntax/lexer"
	"github.com/rofrol/singe/syntax/token"
)

// Parser recognizes statements from a token stream. Its only state across
// calls is the Lexer cursor and the diagnostic sink; there is no token
// buffering and no backtracking.
type Parser struct {
	lexer  *lexer.Lexer
	sink   *DiagnosticSink
	logger *singelog.Logger
}

// Options configures parser behavior.
type Options struct {
	Logger *singelog.Logger
}

// New creates a parser over lx that reports into sink. Both are borrowed;
// the caller keeps them to drive the token stream probe and to drain
// diagnostics.
func New(lx *lexer.Lexer, sink *DiagnosticSink, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = singelog.GetDefault()
	}

	return &Parser{
		lexer:  lx,
		sink:   sink,
		logger: opts.Logger.WithField("component", "parser"),
	}
}

// Next attempts to parse one statement. It returns the statement on
// success, and nil after appending a diagnostic otherwise. A nil result
// also occurs when the token stream is exhausted; callers that need to
// tell the two apart probe the Lexer directly. Every pulled token is
// consumed, so repeated calls always make forward progress, but a
// malformed statement can desynchronize the stream until the next let
// keyword.
func (p *Parser) Next() ast.Statement {
	tok := p.lexer.Next()

	if tok.Kind != token.KindLet {
		p.expectFailed(tok, token.KindLet)
		return nil
	}

	return p.parseLetStatement()
}

// parseLetStatement parses the remainder of a let binding after the let
// keyword: identifier, assign, literal, semicolon. Each expectation
// inspects exactly one token and aborts on the first mismatch.
func (p *Parser) parseLetStatement() ast.Statement {
	name := p.lexer.Next()
	if name.Kind != token.KindIdentifier {
		p.expectFailed(name, token.KindIdentifier)
		return nil
	}

	if assign := p.lexer.Next(); assign.Kind != token.KindAssign {
		p.expectFailed(assign, token.KindAssign)
		return nil
	}

	value := p.lexer.Next()
	if value.Kind != token.KindInteger && value.Kind != token.KindString {
		p.expectFailed(value, token.KindInteger, token.KindString)
		return nil
	}

	if semi := p.lexer.Next(); semi.Kind != token.KindSemicolon {
		p.expectFailed(semi, token.KindSemicolon)
		return nil
	}

	stmt := &ast.LetStatement{
		Name:  name,
		Value: &ast.Literal{Token: value},
	}

	p.logger.Trace("let statement parsed", singelog.Fields{
		"name": name.Text(p.lexer.Source()),
	})

	return stmt
}

// expectFailed appends one diagnostic for a failed expectation. The
// message names the accepted kinds, the observed kind, and the 1-based
// position of the observed token; the format is stable so downstream
// tooling can rely on it.
func (p *Parser) expectFailed(got token.Token, want ...token.Kind) {
	names := make([]string, len(want))
	for i, kind := range want {
		names[i] = kind.String()
	}

	line, col := got.LineCol(p.lexer.Source())
	msg := fmt.Sprintf("expected %s, got %s at line %d, column %d",
		strings.Join(names, " or "), got.Kind, line, col)
	p.sink.Append(msg)

	p.logger.Debug("statement parse aborted", singelog.Fields{
		"expected": strings.Join(names, " or "),
		"got":      got.Kind.String(),
		"line":     line,
		"column":   col,
	})
}
