// File: styles.go
// Title: REPL Styles
// Description: Lipgloss color palette and styles for the interactive
//              scan/parse session.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial REPL styles

package repl

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
)

// Header styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorPrimary).
			Bold(true).
			Underline(true)
)

// Transcript styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	InputEchoStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	StatementStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TokenKindStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	KeywordStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LiteralStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	IllegalStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	DiagnosticStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	PositionStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Input and footer styles
var (
	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// RenderDiagnostic renders one diagnostic line in error red.
func RenderDiagnostic(msg string) string {
	return DiagnosticStyle.Render(msg)
}

// RenderNote renders an informational transcript line.
func RenderNote(msg string) string {
	return MutedStyle.Render(msg)
}
