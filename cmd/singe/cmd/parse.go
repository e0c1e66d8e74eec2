package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rofrol/singe/syntax"
)

var parseText bool

var parseCmd = &cobra.Command{
	Use:   "parse [file|source]",
	Short: "Parse a source file and report diagnostics",
	Long: `Parses source text and prints one line per recognized statement.
Diagnostics for rejected input go to stderr.

The exit code is 1 when any diagnostic was recorded, 0 otherwise.

Examples:
  singe parse program.si
  singe parse 'let x = 5;'
  echo 'let x = 5;' | singe parse
  singe parse --text program.si`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseText, "text", false, "Print statements as source text instead of the positional form")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	session := syntax.NewSession(src, syntax.Options{})

	statements := session.ParseAll()
	for _, stmt := range statements {
		if parseText {
			fmt.Println(stmt.Text(src))
		} else {
			fmt.Println(stmt.String())
		}
	}

	diagnostics := session.Diagnostics().Len()
	if diagnostics > 0 {
		if _, werr := session.WriteDiagnostics(os.Stderr); werr != nil {
			printError("writing diagnostics", werr)
		}
	}
	session.Close()

	// No defer above: os.Exit would skip it.
	if diagnostics > 0 {
		os.Exit(1)
	}
	return nil
}
