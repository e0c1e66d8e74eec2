// File: diagnostics.go
// Title: Diagnostic Sink
// Description: Implements the ordered diagnostic collection filled by the
//              parser. Messages are owned, fully formatted strings; the
//              sink is a flat log with no severities, deduplication, or
//              truncation.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial sink implementation

package parser

import (
	"io"
)

// DiagnosticSink accumulates parser diagnostics in arrival order. Each
// message is stored as its own string; appending never inspects, merges,
// or reorders earlier entries. The zero value is ready to use.
type DiagnosticSink struct {
	messages []string
}

// NewDiagnosticSink creates an empty sink.
func NewDiagnosticSink() *DiagnosticSink {
	return &DiagnosticSink{}
}

// Append stores one formatted message at the end of the queue.
func (s *DiagnosticSink) Append(msg string) {
	s.messages = append(s.messages, msg)
}

// Len returns the number of stored messages.
func (s *DiagnosticSink) Len() int {
	return len(s.messages)
}

// Messages returns a copy of the stored messages in arrival order.
func (s *DiagnosticSink) Messages() []string {
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// WriteTo writes every stored message followed by a newline, in order,
// without consuming the queue. Repeated calls produce identical output.
func (s *DiagnosticSink) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, msg := range s.messages {
		n, err := io.WriteString(w, msg)
		total += int64(n)
		if err != nil {
			return total, err
		}
		n, err = io.WriteString(w, "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Release drops all stored messages. Calling it again is harmless; the
// sink is empty afterwards either way.
func (s *DiagnosticSink) Release() {
	s.messages = nil
}
