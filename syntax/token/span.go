// File: span.go
// Title: Source Span Representation
// Description: Implements half-open byte ranges over a source buffer.
//              Spans are the only position information tokens carry; the
//              lexeme text and line/column coordinates are derived from
//              the span against the original buffer on demand.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial span implementation

package token

import "fmt"

// Span marks the half-open byte range [Start, End) of a lexeme within a
// source buffer. A well-formed span satisfies 0 <= Start <= End <= len(src)
// for the buffer it was scanned from. Zero-width spans occur only at end
// of input and for an illegal token truncated by the end of the buffer.
type Span struct {
	Start int
	End   int
}

// NewSpan builds a span from absolute start and end byte offsets.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// FixedSpan builds a span of a known width starting at start. The scanner
// uses it for single-byte tokens and the two-byte compound operators.
func FixedSpan(start, width int) Span {
	return Span{Start: start, End: start + width}
}

// Width returns the number of bytes the span covers.
func (s Span) Width() int {
	return s.End - s.Start
}

// Text returns the lexeme the span covers as a slice of src. No copy is
// made; the result aliases the source buffer.
func (s Span) Text(src string) string {
	return src[s.Start:s.End]
}

// LineCol derives the 1-based line and column of the span start by
// counting newline bytes in src before the start offset. The column
// resets to 1 after every newline.
func (s Span) LineCol(src string) (line, col int) {
	line, col = 1, 1
	for i := 0; i < s.Start && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// String renders the span in offset notation for debug output.
func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
