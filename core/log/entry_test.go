// File: entry_test.go
// Title: Log Entry Unit Tests
// Description: Tests for entry construction, field constructors, and the
//              Fields helpers used to build structured context.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial test suite

package log

import (
	"errors"
	"testing"
)

func TestNewEntry(t *testing.T) {
	entry := NewEntry(LevelInfo, "test message")

	if entry.Level != LevelInfo {
		t.Errorf("entry level = %v, want %v", entry.Level, LevelInfo)
	}
	if entry.Message != "test message" {
		t.Errorf("entry message = %v, want test message", entry.Message)
	}
	if entry.Timestamp.IsZero() {
		t.Error("entry timestamp should be set")
	}
	if entry.Fields == nil {
		t.Error("entry fields should be initialized")
	}
}

func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name     string
		fields   Fields
		key      string
		expected interface{}
	}{
		{"Field", Field("key", "value"), "key", "value"},
		{"Int", Int("count", 42), "count", 42},
		{"String", String("name", "lexer"), "name", "lexer"},
		{"Bool", Bool("enabled", true), "enabled", true},
		{"Any", Any("data", 3.14), "data", 3.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.fields) != 1 {
				t.Fatalf("fields length = %d, want 1", len(tt.fields))
			}
			if got := tt.fields[tt.key]; got != tt.expected {
				t.Errorf("fields[%q] = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestErrField(t *testing.T) {
	err := errors.New("test error")
	fields := Err(err)

	if got, ok := fields["error"]; !ok || got != err {
		t.Errorf("Err() fields[error] = %v, want %v", got, err)
	}
}

func TestFieldsMerge(t *testing.T) {
	base := Fields{"a": 1, "b": 2}
	other := Fields{"b": 3, "c": 4}

	merged := base.Merge(other)

	if len(merged) != 3 {
		t.Errorf("merged length = %d, want 3", len(merged))
	}
	if merged["a"] != 1 {
		t.Errorf("merged[a] = %v, want 1", merged["a"])
	}
	if merged["b"] != 3 {
		t.Errorf("merged[b] = %v, want 3 (other should win)", merged["b"])
	}
	if merged["c"] != 4 {
		t.Errorf("merged[c] = %v, want 4", merged["c"])
	}

	// Merge must not modify the receiver
	if base["b"] != 2 {
		t.Error("Merge() should not modify the original Fields")
	}
}

func TestFieldsWith(t *testing.T) {
	fields := Fields{"a": 1}.With("b", 2)

	if fields["a"] != 1 || fields["b"] != 2 {
		t.Errorf("With() fields = %v, want a=1 b=2", fields)
	}

	var nilFields Fields
	result := nilFields.With("key", "value")
	if result["key"] != "value" {
		t.Error("With() should handle nil Fields")
	}
}

func TestFieldsClone(t *testing.T) {
	original := Fields{"a": 1, "b": 2}
	clone := original.Clone()

	clone["a"] = 99
	if original["a"] != 1 {
		t.Error("Clone() should create an independent copy")
	}

	var nilFields Fields
	if nilFields.Clone() != nil {
		t.Error("Clone() of nil Fields should be nil")
	}
}

func TestEntryWithField(t *testing.T) {
	entry := NewEntry(LevelDebug, "msg").WithField("key", "value")

	if entry.Fields["key"] != "value" {
		t.Errorf("entry fields[key] = %v, want value", entry.Fields["key"])
	}
}

func TestEntryWithFields(t *testing.T) {
	entry := NewEntry(LevelDebug, "msg").WithFields(Fields{"a": 1, "b": 2})

	if entry.Fields["a"] != 1 || entry.Fields["b"] != 2 {
		t.Errorf("entry fields = %v, want a=1 b=2", entry.Fields)
	}
}

func TestEntryWithError(t *testing.T) {
	err := errors.New("boom")
	entry := NewEntry(LevelError, "msg").WithError(err)

	if entry.Error != err {
		t.Errorf("entry error = %v, want %v", entry.Error, err)
	}
}

func TestEntryWithSessionID(t *testing.T) {
	entry := NewEntry(LevelInfo, "msg").WithSessionID("session-123")

	if entry.SessionID != "session-123" {
		t.Errorf("entry session id = %v, want session-123", entry.SessionID)
	}
}

func TestEntryClone(t *testing.T) {
	original := NewEntry(LevelWarn, "original").
		WithSessionID("s1").
		WithField("key", "value")

	clone := original.Clone()
	clone.Message = "modified"
	clone.Fields["key"] = "changed"

	if original.Message != "original" {
		t.Error("Clone() should not share the message")
	}
	if original.Fields["key"] != "value" {
		t.Error("Clone() should not share the fields map")
	}
	if clone.SessionID != "s1" {
		t.Error("Clone() should copy the session id")
	}

	var nilEntry *Entry
	if nilEntry.Clone() != nil {
		t.Error("Clone() of nil entry should be nil")
	}
}
