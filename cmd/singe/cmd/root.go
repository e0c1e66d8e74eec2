package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rofrol/singe/core/config"
	singeerror "github.com/rofrol/singe/core/error"
	singelog "github.com/rofrol/singe/core/log"
	singestringx "github.com/rofrol/singe/utils/stringx"
)

const envPrefix = "SINGE"

var (
	cfgFile   string
	verbose   bool
	logFormat string

	appConfig *config.Config
)

// configRules bounds the keys the CLI reads. Unknown keys are ignored;
// listed keys must have the right type and range.
var configRules = config.ValidationRules{
	"log.level":               {Type: "string", Default: "info"},
	"log.format":              {Type: "string", Default: "json"},
	"output.color":            {Type: "bool", Default: true},
	"repl.prompt":             {Type: "string", Default: "singe> "},
	"scanner.max_source_size": {Type: "int", Default: 1 << 20, Min: 1},
}

var rootCmd = &cobra.Command{
	Use:   "singe",
	Short: "Scanner and parser for the singe language",
	Long: `singe scans and parses source text written in the singe toy language.

Commands:
  scan     - Dump the token stream of a source file
  parse    - Parse a source file and report diagnostics
  repl     - Interactive scan/parse session
  version  - Print build information`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initRuntime()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: discovered singe.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (json, text, console)")
}

// initRuntime loads the configuration and installs the default logger.
// Runs before every subcommand.
func initRuntime() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if result := cfg.Validate(configRules); !result.Valid {
		return singeerror.New("invalid configuration").
			WithCode(singeerror.CodeInvalidConfig).
			WithOperation("initRuntime").
			WithDetail("errors", strings.Join(result.Errors, "; "))
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}

// loadConfig resolves the configuration source: the --config flag wins,
// then $SINGE_CONFIG, then file discovery. Discovery without a hit yields
// an env-only configuration, so the CLI runs fine with no file at all.
func loadConfig() (*config.Config, error) {
	path := singestringx.FirstNonBlank(cfgFile, os.Getenv("SINGE_CONFIG"))
	if singestringx.IsNotBlank(path) {
		return config.LoadWithOptions(path, config.LoadOptions{EnvPrefix: envPrefix})
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

func setupLogging(cfg *config.Config) error {
	levelName := cfg.GetString("log.level", "info")
	if verbose {
		levelName = "debug"
	}
	level, err := singelog.ParseLevel(levelName)
	if err != nil {
		return singeerror.Wrap(err, "invalid log level").
			WithCode(singeerror.CodeInvalidConfig).
			WithDetail("level", levelName)
	}

	formatName := singestringx.FirstNonBlank(logFormat, cfg.GetString("log.format", "json"))
	format, err := singelog.ParseFormat(formatName)
	if err != nil {
		return singeerror.Wrap(err, "invalid log format").
			WithCode(singeerror.CodeInvalidConfig).
			WithDetail("format", formatName)
	}

	// Logs go to stderr; scan and parse own stdout.
	singelog.SetDefault(singelog.NewWithConfig(singelog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "singe",
	}))
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
