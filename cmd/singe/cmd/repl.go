package cmd

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	singelog "github.com/rofrol/singe/core/log"
	"github.com/rofrol/singe/internal/tui/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive scan and parse session",
	Long: `Starts an interactive session. Each submitted line is scanned and
parsed on its own, and the transcript shows the result.

Session commands:
  :parse   - Show parsed statements and diagnostics (default)
  :tokens  - Show the token stream
  :clear   - Clear the transcript
  :quit    - Leave the session

Keys:
  Enter    - Submit the current line
  Ctrl+L   - Clear the transcript
  Ctrl+C   - Quit`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	// Log lines on stderr would fight with the alt screen.
	restore := singelog.GetDefault()
	singelog.SetDefault(restore.WithOutput(io.Discard))
	defer singelog.SetDefault(restore)

	cfg := repl.DefaultConfig()
	cfg.Prompt = appConfig.GetString("repl.prompt", cfg.Prompt)

	p := tea.NewProgram(
		repl.New(cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		printError("repl terminated", err)
		return err
	}

	return nil
}
