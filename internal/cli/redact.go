package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomlshield/tomlshield/internal/config"
	"github.com/tomlshield/tomlshield/internal/redact"
	"github.com/tomlshield/tomlshield/internal/scan"
)

var (
	flagRedactOut      string
	flagRedactInPlace  bool
	flagRedactBackup   bool
	flagRedactMarker   string
	flagRedactNoVals   bool
	flagRedactComms    bool
	flagRedactNoComms  bool
	flagRedactReport   bool
)

var redactCmd = &cobra.Command{
	Use:   "redact [file...]",
	Short: "Produce a copy with sensitive values replaced by a marker",
	Long: "Redact replaces exactly the sensitive value spans in each document\n" +
		"with the configured marker, leaving every other byte (headers,\n" +
		"indentation, comments, terminators) identical to the input.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(redactOverrides())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		opts := cfg.Options()
		if err := opts.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		if flagRedactOut != "" && len(args) > 1 {
			fmt.Fprintln(os.Stderr, "Error: --out requires a single input file")
			exitCode = ExitUsageError
			return nil
		}
		if flagRedactInPlace && hasStdin(args) {
			fmt.Fprintln(os.Stderr, "Error: --in-place cannot be used with stdin")
			exitCode = ExitUsageError
			return nil
		}

		for _, path := range args {
			if err := redactOne(path, opts, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
		}
		return nil
	},
}

func redactOne(path string, opts scan.Options, cfg config.Config) error {
	doc, err := readInput(path)
	if err != nil {
		return err
	}
	res, err := scan.Scan(doc, opts)
	if err != nil {
		return err
	}
	out := redact.Render(res, opts)

	switch {
	case flagRedactInPlace:
		if flagRedactBackup {
			backupPath := path + cfg.BackupSuffix
			if err := os.WriteFile(backupPath, []byte(doc), 0o600); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}
			log.Debug().Str("path", backupPath).Msg("backup written")
		}
		if err := writeInPlace(path, out.Text); err != nil {
			return err
		}
	case flagRedactOut != "":
		if err := os.WriteFile(flagRedactOut, []byte(out.Text), 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	default:
		fmt.Fprint(os.Stdout, out.Text)
	}

	if flagRedactReport {
		printRedactionReport(path, out.Findings)
	}
	return nil
}

// printRedactionReport summarizes what changed, to stderr so it never mixes
// with redacted text on stdout.
func printRedactionReport(path string, findings []scan.Finding) {
	if len(findings) == 0 {
		fmt.Fprintf(os.Stderr, "%s: no sensitive data found\n", displayPath(path))
		return
	}
	lines := make([]string, len(findings))
	for i, f := range findings {
		lines[i] = strconv.Itoa(f.Line)
	}
	fmt.Fprintf(os.Stderr, "%s: redacted %d sensitive field(s)\n", displayPath(path), len(findings))
	fmt.Fprintf(os.Stderr, "Lines modified: %s\n", strings.Join(lines, ", "))
}

func redactOverrides() map[string]string {
	m := make(map[string]string)
	if flagRedactMarker != "" {
		m["marker"] = flagRedactMarker
	}
	if flagRedactNoVals {
		m["checkValues"] = "false"
	}
	if flagRedactComms {
		m["includeComments"] = "true"
	}
	if flagRedactNoComms {
		m["removeComments"] = "true"
	}
	return m
}

func hasStdin(args []string) bool {
	for _, a := range args {
		if a == "-" {
			return true
		}
	}
	return false
}

func init() {
	redactCmd.Flags().StringVarP(&flagRedactOut, "out", "o", "", "Output file path (default: stdout)")
	redactCmd.Flags().BoolVar(&flagRedactInPlace, "in-place", false, "Rewrite each input file with its redacted copy")
	redactCmd.Flags().BoolVar(&flagRedactBackup, "backup", false, "Write a backup copy before overwriting (with --in-place)")
	redactCmd.Flags().StringVarP(&flagRedactMarker, "marker", "r", "", "Redaction marker text")
	redactCmd.Flags().BoolVar(&flagRedactNoVals, "no-check-values", false, "Only redact based on key names, not value patterns")
	redactCmd.Flags().BoolVar(&flagRedactComms, "include-comments", false, "Also redact commented-out lines")
	redactCmd.Flags().BoolVar(&flagRedactNoComms, "remove-comments", false, "Drop all comment lines from output")
	redactCmd.Flags().BoolVar(&flagRedactReport, "report", false, "Print a redaction summary to stderr")
}
