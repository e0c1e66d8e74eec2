// File: kind.go
// Title: Token Kind Definitions
// Description: Defines the closed set of token kinds produced by the
//              scanner together with their display names and the
//              classification of completed word lexemes into keywords,
//              integers, and identifiers.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial kind set and word classification

package token

// Kind identifies the lexical class of a token.
type Kind int

const (
	// Special tokens
	KindIllegal Kind = iota
	KindEndOfInput

	// Words and literals
	KindIdentifier
	KindInteger
	KindString

	// Operators
	KindAssign
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindPercent
	KindBang
	KindEqual
	KindNotEqual
	KindLess
	KindGreater
	KindLessEqual
	KindGreaterEqual

	// Delimiters
	KindLParen
	KindRParen
	KindLBrace
	KindRBrace
	KindLBracket
	KindRBracket
	KindSemicolon
	KindComma
	KindDot
	KindColon

	// Keywords
	KindFunc
	KindLet
	KindIf
	KindElse
	KindReturn
	KindTrue
	KindFalse
	KindNil
	KindFor
)

var kindNames = [...]string{
	KindIllegal:      "ILLEGAL",
	KindEndOfInput:   "END_OF_INPUT",
	KindIdentifier:   "IDENTIFIER",
	KindInteger:      "INTEGER",
	KindString:       "STRING",
	KindAssign:       "ASSIGN",
	KindPlus:         "PLUS",
	KindMinus:        "MINUS",
	KindStar:         "STAR",
	KindSlash:        "SLASH",
	KindPercent:      "PERCENT",
	KindBang:         "BANG",
	KindEqual:        "EQUAL",
	KindNotEqual:     "NOT_EQUAL",
	KindLess:         "LESS",
	KindGreater:      "GREATER",
	KindLessEqual:    "LESS_EQUAL",
	KindGreaterEqual: "GREATER_EQUAL",
	KindLParen:       "LPAREN",
	KindRParen:       "RPAREN",
	KindLBrace:       "LBRACE",
	KindRBrace:       "RBRACE",
	KindLBracket:     "LBRACKET",
	KindRBracket:     "RBRACKET",
	KindSemicolon:    "SEMICOLON",
	KindComma:        "COMMA",
	KindDot:          "DOT",
	KindColon:        "COLON",
	KindFunc:         "FUNC",
	KindLet:          "LET",
	KindIf:           "IF",
	KindElse:         "ELSE",
	KindReturn:       "RETURN",
	KindTrue:         "TRUE",
	KindFalse:        "FALSE",
	KindNil:          "NIL",
	KindFor:          "FOR",
}

// String returns the display name of the kind as used in diagnostics.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// IsKeyword reports whether the kind is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KindFunc && k <= KindFor
}

// IsLiteral reports whether the kind is a literal value token.
func (k Kind) IsLiteral() bool {
	return k == KindInteger || k == KindString
}

// keywords maps reserved word lexemes to their kinds. Lookup is exact;
// "Let" or "LET" are plain identifiers.
var keywords = map[string]Kind{
	"let":    KindLet,
	"fn":     KindFunc,
	"if":     KindIf,
	"else":   KindElse,
	"return": KindReturn,
	"true":   KindTrue,
	"false":  KindFalse,
	"nil":    KindNil,
	"for":    KindFor,
}

// Classify maps a completed word lexeme to its kind. Precedence is fixed:
// keyword lookup first, then the all-digit integer test, then the
// identifier fallback. Digit runs are not range checked here; magnitude
// validation belongs to later stages.
func Classify(lexeme string) Kind {
	if kind, ok := keywords[lexeme]; ok {
		return kind
	}
	if isAllDigits(lexeme) {
		return KindInteger
	}
	return KindIdentifier
}

func isAllDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
