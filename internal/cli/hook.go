package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomlshield/tomlshield/internal/gitctx"
)

const (
	hookMarkerStart = "# >>> tomlshield pre-commit hook >>>"
	hookMarkerEnd   = "# <<< tomlshield pre-commit hook <<<"
)

var hookFormat string

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage git pre-commit hook",
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install tomlshield as a git pre-commit hook",
	RunE: func(cmd *cobra.Command, args []string) error {
		hookPath, err := getHookPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		section := generateHookScript(hookFormat)

		existing, err := os.ReadFile(hookPath)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error reading hook file: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		var content string
		if os.IsNotExist(err) || len(existing) == 0 {
			// No existing hook — create new file
			content = "#!/bin/sh\n" + section
		} else {
			content = replaceHookSection(string(existing), section)
		}

		if err := os.MkdirAll(filepath.Dir(hookPath), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating hooks directory: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing hook file: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintf(os.Stdout, "Installed tomlshield pre-commit hook at %s\n", hookPath)
		return nil
	},
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove tomlshield pre-commit hook",
	RunE: func(cmd *cobra.Command, args []string) error {
		hookPath, err := getHookPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		existing, err := os.ReadFile(hookPath)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintln(os.Stdout, "No pre-commit hook found.")
				return nil
			}
			fmt.Fprintf(os.Stderr, "Error reading hook file: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		content := removeHookSection(string(existing))

		// If only shebang (and whitespace) remains, delete the file entirely
		trimmed := strings.TrimSpace(content)
		if trimmed == "" || trimmed == "#!/bin/sh" || trimmed == "#!/bin/bash" {
			if err := os.Remove(hookPath); err != nil {
				fmt.Fprintf(os.Stderr, "Error removing hook file: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			fmt.Fprintf(os.Stdout, "Removed tomlshield pre-commit hook at %s\n", hookPath)
			return nil
		}

		if err := os.WriteFile(hookPath, []byte(content), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing hook file: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintf(os.Stdout, "Removed tomlshield section from %s\n", hookPath)
		return nil
	},
}

func getHookPath() (string, error) {
	gitDir, err := gitctx.GitDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "hooks", "pre-commit"), nil
}

func generateHookScript(format string) string {
	var b strings.Builder
	b.WriteString(hookMarkerStart + "\n")
	b.WriteString(fmt.Sprintf("tomlshield scan --staged --format %s\n", format))
	b.WriteString("TOMLSHIELD_EXIT=$?\n")
	b.WriteString("if [ $TOMLSHIELD_EXIT -eq 1 ]; then\n")
	b.WriteString("  echo \"tomlshield: sensitive values staged, commit blocked\"\n")
	b.WriteString("  exit 1\n")
	b.WriteString("elif [ $TOMLSHIELD_EXIT -ge 2 ]; then\n")
	b.WriteString("  echo \"tomlshield: warning — scan encountered an error (exit $TOMLSHIELD_EXIT), allowing commit\"\n")
	b.WriteString("fi\n")
	b.WriteString(hookMarkerEnd + "\n")
	return b.String()
}

func replaceHookSection(existing, section string) string {
	startIdx := strings.Index(existing, hookMarkerStart)
	endIdx := strings.Index(existing, hookMarkerEnd)

	if startIdx == -1 || endIdx == -1 {
		// No existing tomlshield section — append
		if !strings.HasSuffix(existing, "\n") {
			existing += "\n"
		}
		return existing + section
	}

	// Replace existing section
	before := existing[:startIdx]
	after := existing[endIdx+len(hookMarkerEnd):]
	// Trim leading newline from after to avoid double newlines
	after = strings.TrimPrefix(after, "\n")
	return before + section + after
}

func removeHookSection(existing string) string {
	startIdx := strings.Index(existing, hookMarkerStart)
	endIdx := strings.Index(existing, hookMarkerEnd)

	if startIdx == -1 || endIdx == -1 {
		return existing
	}

	before := existing[:startIdx]
	after := existing[endIdx+len(hookMarkerEnd):]
	after = strings.TrimPrefix(after, "\n")

	return before + after
}

func init() {
	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)
	hookInstallCmd.Flags().StringVar(&hookFormat, "format", "text", "Output format used by the hook (text, json, markdown, sarif)")
}
