// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements string operations that extend the Go standard
//              library. Unicode-aware where it matters, with fast paths
//              for the ASCII-only strings the toolchain mostly handles.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-15
// Modified: 2026-08-15
//
// Change History:
// - 2026-08-15 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to maxLen runes, appending the ellipsis when
// truncation happens. Multi-byte characters are never split.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		// No room for the ellipsis, plain cut
		return string([]rune(s)[:maxLen])
	}

	contentLen := maxLen - ellipsisLen
	return string([]rune(s)[:contentLen]) + ellipsis
}

// isASCIIString checks if a string contains only ASCII characters
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}

// isASCIIRune checks if a rune is ASCII
func isASCIIRune(r rune) bool {
	return r < 128
}

// PadLeft pads s to the given width with the pad character. Strings already
// at or beyond the width are returned unchanged.
func PadLeft(s string, width int, pad rune) string {
	// ASCII fast path with exact allocation
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		padCount := width - len(s)
		for i := 0; i < padCount; i++ {
			result[i] = byte(pad)
		}
		copy(result[padCount:], s)
		return string(result)
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(width * 4)
	for i := 0; i < width-runeCount; i++ {
		builder.WriteRune(pad)
	}
	builder.WriteString(s)
	return builder.String()
}

// PadRight pads s to the given width with the pad character. Strings already
// at or beyond the width are returned unchanged.
func PadRight(s string, width int, pad rune) string {
	// ASCII fast path with exact allocation
	if isASCIIString(s) && isASCIIRune(pad) {
		if len(s) >= width {
			return s
		}

		result := make([]byte, width)
		copy(result, s)
		for i := len(s); i < width; i++ {
			result[i] = byte(pad)
		}
		return string(result)
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(width * 4)
	builder.WriteString(s)
	for i := 0; i < width-runeCount; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// SplitLines splits a string into lines, normalizing \r\n and \r endings
// to \n first.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return strings.Split(s, "\n")
}

// FirstNonEmpty returns the first non-empty string from the arguments.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string from the arguments.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}
