// File: doc.go
// Title: AST Package Documentation
// Description: Documents the ast package, which defines the syntax tree
//              nodes produced by the parser.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial node definitions

/*
Package ast defines the syntax tree produced by the parser.

The tree is deliberately small: the grammar derives one statement form, the
let binding, whose right-hand side is a literal expression. Nodes store
tokens rather than strings, so a tree is position information over the
source buffer it was parsed from; lexeme text is recovered on demand with
the Text methods.

The package provides:
  • Statement and Expr, the node category interfaces
  • LetStatement, the single statement form
  • Literal and FunctionBody, the expression forms
*/
package ast
