// File: error_test.go
// Title: Structured Error Unit Tests
// Description: Tests for error construction, wrapping, fluent builders,
//              cause chains, and JSON marshaling.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial test suite

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something went wrong")

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != "something went wrong" {
		t.Errorf("Error() = %v, want something went wrong", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("default code = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("default severity = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("timestamp should be set")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("stack trace should be captured")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("root failure")
	err := Wrap(cause, "operation failed")

	if err.Error() != "operation failed: root failure" {
		t.Errorf("Error() = %v, want operation failed: root failure", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error should match the cause via errors.Is")
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "nothing"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWrapCarriesContext(t *testing.T) {
	inner := New("read failed").
		WithCode(CodeIOError).
		WithDetail("path", "/tmp/input")
	wrapped := Wrap(inner, "scan aborted")

	if wrapped.Code() != CodeIOError {
		t.Errorf("wrapped code = %v, want %v", wrapped.Code(), CodeIOError)
	}
	if wrapped.Severity() != SeverityMedium {
		t.Errorf("wrapped severity = %v, want %v", wrapped.Severity(), SeverityMedium)
	}
	if wrapped.Details()["path"] != "/tmp/input" {
		t.Errorf("wrapped details = %v, want path to carry over", wrapped.Details())
	}
}

func TestErrorChaining(t *testing.T) {
	root := errors.New("disk error")
	middle := Wrap(root, "read failed")
	outer := Wrap(middle, "load failed")

	if outer.Error() != "load failed: read failed: disk error" {
		t.Errorf("Error() = %v, want the full chain", outer.Error())
	}
	if outer.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", outer.RootCause(), root)
	}
	if !errors.Is(outer, root) {
		t.Error("errors.Is should find the root through the chain")
	}
}

func TestRootCauseWithoutChain(t *testing.T) {
	err := New("standalone")

	if err.RootCause() != err {
		t.Error("RootCause() of an unchained error should be the error itself")
	}
}

func TestWithCode(t *testing.T) {
	err := New("bad input").WithCode(CodeInvalidInput)

	if err.Code() != CodeInvalidInput {
		t.Errorf("code = %v, want %v", err.Code(), CodeInvalidInput)
	}
	// Default severity follows the code
	if err.Severity() != SeverityLow {
		t.Errorf("severity = %v, want %v (from code)", err.Severity(), SeverityLow)
	}
}

func TestWithCodeKeepsExplicitSeverity(t *testing.T) {
	err := New("bad input").
		WithSeverity(SeverityCritical).
		WithCode(CodeInvalidInput)

	if err.Severity() != SeverityCritical {
		t.Errorf("severity = %v, want explicit %v", err.Severity(), SeverityCritical)
	}
}

func TestWithSeverity(t *testing.T) {
	err := New("problem").WithSeverity(SeverityHigh)

	if err.Severity() != SeverityHigh {
		t.Errorf("severity = %v, want %v", err.Severity(), SeverityHigh)
	}
}

func TestWithDetail(t *testing.T) {
	err := New("problem").
		WithDetail("offset", 42).
		WithDetail("source", "input.mk")

	details := err.Details()
	if details["offset"] != 42 {
		t.Errorf("details[offset] = %v, want 42", details["offset"])
	}
	if details["source"] != "input.mk" {
		t.Errorf("details[source] = %v, want input.mk", details["source"])
	}
}

func TestWithDetails(t *testing.T) {
	err := New("problem").WithDetails(map[string]interface{}{
		"line":   3,
		"column": 7,
	})

	details := err.Details()
	if details["line"] != 3 || details["column"] != 7 {
		t.Errorf("details = %v, want line=3 column=7", details)
	}
}

func TestDetailsReturnsCopy(t *testing.T) {
	err := New("problem").WithDetail("key", "original")

	details := err.Details()
	details["key"] = "modified"

	if err.Details()["key"] != "original" {
		t.Error("Details() should return a copy")
	}
}

func TestWithOperation(t *testing.T) {
	err := New("problem").WithOperation("Parser.Next")

	if err.Operation() != "Parser.Next" {
		t.Errorf("operation = %v, want Parser.Next", err.Operation())
	}
}

func TestString(t *testing.T) {
	err := New("scan failed").
		WithCode(CodeSyntax).
		WithOperation("Lexer.Next")

	output := err.String()
	if !strings.Contains(output, "Error: scan failed") {
		t.Errorf("String() should contain the message: %q", output)
	}
	if !strings.Contains(output, "Code: SYNTAX") {
		t.Errorf("String() should contain the code: %q", output)
	}
	if !strings.Contains(output, "Operation: Lexer.Next") {
		t.Errorf("String() should contain the operation: %q", output)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("scan failed").
		WithCode(CodeUnterminatedString).
		WithOperation("Lexer.Next").
		WithDetail("offset", 8)

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("Marshal failed: %v", marshalErr)
	}

	var result map[string]interface{}
	if unmarshalErr := json.Unmarshal(data, &result); unmarshalErr != nil {
		t.Fatalf("output is not valid JSON: %v", unmarshalErr)
	}

	if result["message"] != "scan failed" {
		t.Errorf("message = %v, want scan failed", result["message"])
	}
	if result["code"] != "UNTERMINATED_STRING" {
		t.Errorf("code = %v, want UNTERMINATED_STRING", result["code"])
	}
	if result["severity"] != "low" {
		t.Errorf("severity = %v, want low", result["severity"])
	}
	if result["operation"] != "Lexer.Next" {
		t.Errorf("operation = %v, want Lexer.Next", result["operation"])
	}

	details, ok := result["details"].(map[string]interface{})
	if !ok || details["offset"] != float64(8) {
		t.Errorf("details = %v, want offset=8", result["details"])
	}
}

func TestHasCode(t *testing.T) {
	err := New("problem").WithCode(CodeSyntax)

	if !HasCode(err, CodeSyntax) {
		t.Error("HasCode should match the error's code")
	}
	if HasCode(err, CodeIOError) {
		t.Error("HasCode should not match a different code")
	}
	if HasCode(errors.New("plain"), CodeSyntax) {
		t.Error("HasCode should be false for plain errors")
	}
}

func TestGetCode(t *testing.T) {
	err := New("problem").WithCode(CodeConfigError)

	if got := GetCode(err); got != CodeConfigError {
		t.Errorf("GetCode() = %v, want %v", got, CodeConfigError)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
}

func TestGetSeverity(t *testing.T) {
	err := New("problem").WithSeverity(SeverityCritical)

	if got := GetSeverity(err); got != SeverityCritical {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityCritical)
	}
	if got := GetSeverity(errors.New("plain")); got != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v, want %v", got, SeverityMedium)
	}
}

func TestStackTraceLimit(t *testing.T) {
	err := New("problem")

	if len(err.StackTrace()) > MaxStackFrames {
		t.Errorf("stack trace length = %d, want at most %d", len(err.StackTrace()), MaxStackFrames)
	}
}
