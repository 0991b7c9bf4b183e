package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tomlshield/tomlshield/internal/logging"
)

const version = "0.1.0"

// Exit codes: zero means no findings, one means sensitive values were
// found, so the binary can gate CI jobs and pre-commit hooks directly.
const (
	ExitSuccess      = 0
	ExitFindings     = 1
	ExitUsageError   = 2
	ExitRuntimeError = 3
)

var flagVerbose bool

// log is the process-wide logger, configured from --verbose before any
// command runs.
var log zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "tomlshield",
	Short: "Detect and redact secrets in TOML configuration files",
	Long: "Tomlshield scans TOML-like configuration files for sensitive keys and\n" +
		"secret-shaped values, reporting findings or producing a redacted copy\n" +
		"that preserves every other byte of the document.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.Default(flagVerbose)
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(redactCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print tomlshield version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "tomlshield version %s\n", version)
	},
}
