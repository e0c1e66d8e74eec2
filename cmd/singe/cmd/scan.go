package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	singeerror "github.com/rofrol/singe/core/error"
	"github.com/rofrol/singe/syntax"
	"github.com/rofrol/singe/syntax/token"
	singestringx "github.com/rofrol/singe/utils/stringx"
)

var (
	scanJSON  bool
	scanPlain bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [file|source]",
	Short: "Dump the token stream of a source file",
	Long: `Scans source text and prints one token per line: kind, byte span,
line:column and the lexeme.

Reads the source from a file argument, from the arguments themselves
when no such file exists, or from stdin.

Examples:
  singe scan program.si
  singe scan 'let x = 5;'
  echo 'let x = 5;' | singe scan
  singe scan --json program.si`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print tokens as a JSON array")
	scanCmd.Flags().BoolVar(&scanPlain, "plain", false, "Disable styled output")
}

func runScan(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	session := syntax.NewSession(src, syntax.Options{})
	defer session.Close()

	tokens := session.Tokens()

	if scanJSON {
		return writeTokensJSON(os.Stdout, src, tokens)
	}
	writeTokenTable(os.Stdout, src, tokens)
	return nil
}

// readSource resolves the input for scan and parse: piped stdin first,
// then a file argument, then the arguments joined as literal source.
func readSource(args []string) (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", singeerror.Wrap(err, "reading stdin").
				WithCode(singeerror.CodeIOError).
				WithOperation("readSource")
		}
		return checkSourceSize(string(data))
	}

	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err == nil {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return "", singeerror.Wrap(err, "reading source file").
					WithCode(singeerror.CodeIOError).
					WithOperation("readSource").
					WithDetail("path", args[0])
			}
			return checkSourceSize(string(data))
		}
		return checkSourceSize(strings.Join(args, " "))
	}

	return "", singeerror.New("no source given").
		WithCode(singeerror.CodeInvalidInput).
		WithOperation("readSource")
}

func checkSourceSize(src string) (string, error) {
	maxSize := appConfig.GetInt("scanner.max_source_size", 1<<20)
	if len(src) > maxSize {
		return "", singeerror.New("source exceeds maximum size").
			WithCode(singeerror.CodeSourceTooLarge).
			WithOperation("checkSourceSize").
			WithDetail("sourceBytes", len(src)).
			WithDetail("maxBytes", maxSize)
	}
	return src, nil
}

var (
	scanKeywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true)
	scanLiteralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	scanIllegalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	scanKindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	scanPosStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

func styleForKind(kind token.Kind) lipgloss.Style {
	switch {
	case kind == token.KindIllegal:
		return scanIllegalStyle
	case kind.IsKeyword():
		return scanKeywordStyle
	case kind.IsLiteral():
		return scanLiteralStyle
	default:
		return scanKindStyle
	}
}

func colorEnabled() bool {
	if scanPlain || !appConfig.GetBool("output.color", true) {
		return false
	}
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func writeTokenTable(w io.Writer, src string, tokens []token.Token) {
	styled := colorEnabled()

	for _, tok := range tokens {
		line, col := tok.LineCol(src)
		kind := singestringx.PadRight(tok.Kind.String(), 14, ' ')
		span := singestringx.PadLeft(fmt.Sprintf("%d..%d", tok.Span.Start, tok.Span.End), 8, ' ')
		pos := singestringx.PadLeft(fmt.Sprintf("%d:%d", line, col), 7, ' ')
		lexeme := tok.Text(src)

		if styled {
			// Padding happens before styling so the ANSI escapes do not
			// count against the column widths.
			kind = styleForKind(tok.Kind).Render(kind)
			span = scanPosStyle.Render(span)
			pos = scanPosStyle.Render(pos)
		}

		fmt.Fprintf(w, "%s %s %s  %q\n", kind, span, pos, lexeme)
	}
}

type tokenJSON struct {
	Kind   string `json:"kind"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Text   string `json:"text"`
}

func writeTokensJSON(w io.Writer, src string, tokens []token.Token) error {
	out := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		line, col := tok.LineCol(src)
		out = append(out, tokenJSON{
			Kind:   tok.Kind.String(),
			Start:  tok.Span.Start,
			End:    tok.Span.End,
			Line:   line,
			Column: col,
			Text:   tok.Text(src),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
