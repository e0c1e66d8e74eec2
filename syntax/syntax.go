// File: syntax.go
// Title: Syntax Session Facade
// Description: Provides the Session type that wires a lexer, parser, and
//              diagnostic sink over one source buffer, with session-scoped
//              structured logging.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial session facade

package syntax

import (
	"io"

	"github.com/google/uuid"

	singelog "github.com/rofrol/singe/core/log"
	"github.com/rofrol/singe/syntax/ast"
	"github.com/rofrol/singe/syntax/lexer"
	"github.com/rofrol/singe/syntax/parser"
	"github.com/rofrol/singe/syntax/token"
)

// Session owns one lexer, one parser, and one diagnostic sink over a
// single source buffer. Sessions are single-threaded; independent
// sessions over independent buffers are safe to run concurrently.
type Session struct {
	src    string
	lexer  *lexer.Lexer
	parser *parser.Parser
	sink   *parser.DiagnosticSink
	logger *singelog.Logger
	id     string
	closed bool
}

// Options configures a Session
type Options struct {
	Logger *singelog.Logger
}

// NewSession creates a parsing session over the given source buffer
func NewSession(src string, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = singelog.GetDefault()
	}

	id := uuid.New().String()
	logger := opts.Logger.
		WithField("component", "syntax-session").
		WithSessionID(id)

	lx := lexer.New(src)
	sink := parser.NewDiagnosticSink()
	p := parser.New(lx, sink, parser.Options{Logger: logger})

	logger.Debug("session opened", singelog.Fields{
		"sourceBytes": len(src),
	})

	return &Session{
		src:    src,
		lexer:  lx,
		parser: p,
		sink:   sink,
		logger: logger,
		id:     id,
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Source returns the source buffer the session scans
func (s *Session) Source() string {
	return s.src
}

// Next parses and returns the next statement. A nil result means the
// input could not produce one, exhaustion included, and exactly one
// diagnostic was recorded for it.
func (s *Session) Next() ast.Statement {
	return s.parser.Next()
}

// ParseAll drives the parser across the remaining input and returns the
// statements that parsed. Malformed statements contribute diagnostics
// instead of results.
func (s *Session) ParseAll() []ast.Statement {
	var statements []ast.Statement

	for !s.lexer.AtEnd() {
		if stmt := s.parser.Next(); stmt != nil {
			statements = append(statements, stmt)
		}
	}

	s.logger.Debug("source parsed", singelog.Fields{
		"statements":  len(statements),
		"diagnostics": s.sink.Len(),
	})

	return statements
}

// Tokens scans the session's buffer with a fresh lexer and returns every
// token through the first EndOfInput. The parsing cursor is not touched.
func (s *Session) Tokens() []token.Token {
	lx := lexer.New(s.src)

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.KindEndOfInput {
			break
		}
	}

	return tokens
}

// Diagnostics returns the session's diagnostic sink
func (s *Session) Diagnostics() *parser.DiagnosticSink {
	return s.sink
}

// WriteDiagnostics writes accumulated diagnostics to w, one per line,
// without consuming them
func (s *Session) WriteDiagnostics(w io.Writer) (int64, error) {
	return s.sink.WriteTo(w)
}

// Close releases the diagnostic sink. Further calls are no-ops.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	s.sink.Release()
	s.logger.Debug("session closed")

	return nil
}
