// File: model.go
// Title: REPL Model
// Description: Bubbletea model for the interactive scan/parse session.
//              Each submitted line runs through a fresh syntax session;
//              the transcript shows statements, diagnostics or tokens
//              depending on the active mode.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-20
// Modified: 2026-08-20
//
// Change History:
// - 2026-08-20 v0.1.0: Initial REPL model

package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	singelog "github.com/rofrol/singe/core/log"
	"github.com/rofrol/singe/syntax"
	"github.com/rofrol/singe/syntax/token"
	singestringx "github.com/rofrol/singe/utils/stringx"
)

// Mode selects what the transcript shows for each submitted line.
type Mode int

const (
	ModeParse Mode = iota
	ModeTokens
)

// Config holds REPL configuration.
type Config struct {
	Prompt string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Prompt: "singe> ",
	}
}

// Model is the Bubbletea model for the interactive session.
type Model struct {
	// State
	width  int
	height int
	ready  bool
	mode   Mode

	// Components
	textarea textarea.Model
	viewport viewport.Model

	// Transcript
	entries []entry

	// Session identity
	sessionID string
	logger    *singelog.Logger

	prompt string
}

// New creates a new REPL model.
func New(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "let x = 5;"
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	id := uuid.New().String()
	logger := singelog.GetDefault().
		WithField("component", "repl").
		WithSessionID(id)
	logger.Debug("repl session opened")

	return Model{
		mode:      ModeParse,
		textarea:  ta,
		entries:   []entry{},
		sessionID: id,
		logger:    logger,
		prompt:    cfg.Prompt,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			m.logger.Debug("repl session closed", singelog.Fields{"lines": len(m.entries)})
			return m, tea.Quit

		case "ctrl+l":
			m.entries = nil
			m.updateContent()
			return m, nil

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()
			if strings.HasPrefix(input, ":") {
				return m.runCommand(input)
			}
			return m, m.evaluate(input)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 5 // input box + status bar

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.updateContent()

	case evalResultMsg:
		m.entries = append(m.entries, msg.entry)
		m.updateContent()
	}

	// Update components
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// runCommand handles the colon commands.
func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	switch input {
	case ":parse":
		m.mode = ModeParse
		m.entries = append(m.entries, entry{input: input, result: RenderNote("parse mode") + "\n"})
	case ":tokens":
		m.mode = ModeTokens
		m.entries = append(m.entries, entry{input: input, result: RenderNote("token mode") + "\n"})
	case ":clear":
		m.entries = nil
	case ":quit", ":q":
		m.logger.Debug("repl session closed", singelog.Fields{"lines": len(m.entries)})
		return m, tea.Quit
	default:
		m.entries = append(m.entries, entry{input: input, result: RenderDiagnostic("unknown command: "+input) + "\n"})
	}
	m.updateContent()
	return m, nil
}

// evaluate scans and parses one line in a fresh syntax session.
func (m Model) evaluate(input string) tea.Cmd {
	mode := m.mode
	logger := m.logger
	return func() tea.Msg {
		logger.Debug("line submitted", singelog.Fields{"bytes": len(input)})

		session := syntax.NewSession(input, syntax.Options{Logger: logger})
		defer session.Close()

		var result string
		switch mode {
		case ModeTokens:
			result = renderTokens(input, session.Tokens())
		default:
			result = renderStatements(input, session)
		}

		return evalResultMsg{entry: entry{input: input, result: result}}
	}
}

func renderTokens(src string, tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		line, col := tok.LineCol(src)
		b.WriteString(kindStyle(tok.Kind).Render(singestringx.PadRight(tok.Kind.String(), 14, ' ')))
		b.WriteString(PositionStyle.Render(fmt.Sprintf(" %d..%d %d:%d  ", tok.Span.Start, tok.Span.End, line, col)))
		b.WriteString(InputEchoStyle.Render(fmt.Sprintf("%q", tok.Text(src))))
		b.WriteString("\n")
	}
	return b.String()
}

func renderStatements(src string, session *syntax.Session) string {
	var b strings.Builder

	statements := session.ParseAll()
	for _, stmt := range statements {
		b.WriteString(StatementStyle.Render(stmt.String()))
		b.WriteString("\n")
	}

	for _, msg := range session.Diagnostics().Messages() {
		b.WriteString(RenderDiagnostic(msg))
		b.WriteString("\n")
	}

	if len(statements) == 0 && session.Diagnostics().Len() == 0 {
		b.WriteString(RenderNote("(no statements)"))
		b.WriteString("\n")
	}

	return b.String()
}

func kindStyle(kind token.Kind) lipgloss.Style {
	switch {
	case kind == token.KindIllegal:
		return IllegalStyle
	case kind.IsKeyword():
		return KeywordStyle
	case kind.IsLiteral():
		return LiteralStyle
	default:
		return TokenKindStyle
	}
}

// View renders the UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.textarea.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderHeader() string {
	tabs := []string{"Parse", "Tokens"}
	var renderedTabs []string

	for i, tab := range tabs {
		if Mode(i) == m.mode {
			renderedTabs = append(renderedTabs, ActiveTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, TabStyle.Render(tab))
		}
	}

	title := TitleStyle.Render("singe repl")
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabLine)
}

func (m *Model) renderFooter() string {
	help := "Enter: Submit • :tokens/:parse: Mode • Ctrl+L: Clear • Ctrl+C: Quit"
	session := "session " + singestringx.Truncate(m.sessionID, 8, "")

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-len(help)-len(session)-4)),
			session,
		),
	)
}

// updateContent rebuilds the transcript shown in the viewport.
func (m *Model) updateContent() {
	var content strings.Builder

	for _, e := range m.entries {
		content.WriteString(PromptStyle.Render(m.prompt))
		content.WriteString(InputEchoStyle.Render(singestringx.Truncate(e.input, 120, "...")))
		content.WriteString("\n")
		for _, line := range singestringx.SplitLines(strings.TrimRight(e.result, "\n")) {
			content.WriteString("  ")
			content.WriteString(line)
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}
