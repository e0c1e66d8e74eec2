// File: nodes.go
// Title: Syntax Tree Node Definitions
// Description: Defines the statement and expression nodes produced by the
//              parser. Nodes hold tokens, not text; lexemes are recovered
//              from the original source buffer through the token spans.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial node set

package ast

import (
	"strings"

	"github.com/rofrol/singe/syntax/token"
)

// Node is the common interface of all syntax tree nodes. String renders a
// positional debug form; Text re-renders the node from the source buffer
// its tokens were scanned from.
type Node interface {
	String() string
	Text(src string) string
}

// Statement is a complete statement. The grammar currently derives a
// single statement form, the let binding.
type Statement interface {
	Node
	stmtNode()
}

// Expr is an expression on the right-hand side of a binding.
type Expr interface {
	Node
	exprNode()
}

// LetStatement is a `let <identifier> = <literal>;` binding. Name is the
// bound identifier token; Value is the right-hand side expression.
type LetStatement struct {
	Name  token.Token
	Value Expr
}

func (s *LetStatement) stmtNode() {}

// String renders the statement with token positions instead of lexemes.
func (s *LetStatement) String() string {
	var b strings.Builder
	b.WriteString("let ")
	b.WriteString(s.Name.String())
	b.WriteString(" = ")
	if s.Value != nil {
		b.WriteString(s.Value.String())
	}
	b.WriteString(";")
	return b.String()
}

// Text re-renders the statement from the source buffer.
func (s *LetStatement) Text(src string) string {
	var b strings.Builder
	b.WriteString("let ")
	b.WriteString(s.Name.Text(src))
	b.WriteString(" = ")
	if s.Value != nil {
		b.WriteString(s.Value.Text(src))
	}
	b.WriteString(";")
	return b.String()
}

// Literal is a single literal token used as an expression. The token kind
// is INTEGER or STRING.
type Literal struct {
	Token token.Token
}

func (e *Literal) exprNode() {}

func (e *Literal) String() string {
	return e.Token.String()
}

func (e *Literal) Text(src string) string {
	return e.Token.Text(src)
}

// FunctionBody is a braced statement block. The type is part of the tree
// vocabulary, but no current production derives it; the parser accepts
// only literal right-hand sides.
type FunctionBody struct {
	Statements []Statement
}

func (e *FunctionBody) exprNode() {}

func (e *FunctionBody) String() string {
	parts := make([]string, 0, len(e.Statements))
	for _, stmt := range e.Statements {
		parts = append(parts, stmt.String())
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (e *FunctionBody) Text(src string) string {
	parts := make([]string, 0, len(e.Statements))
	for _, stmt := range e.Statements {
		parts = append(parts, stmt.Text(src))
	}
	return "{ " + strings.Join(parts, " ") + " }"
}
