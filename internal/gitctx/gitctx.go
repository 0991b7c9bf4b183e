// Package gitctx shells out to git for the small amount of repository
// context the CLI needs: the hooks directory and the staged file list used
// by the pre-commit gate.
package gitctx

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitDir returns the repository's .git directory.
func GitDir() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--git-dir").Output()
	if err != nil {
		return "", fmt.Errorf("not a git repository (git rev-parse --git-dir failed)")
	}
	return strings.TrimSpace(string(out)), nil
}

// StagedFiles returns the paths of files staged for commit (added, copied,
// or modified).
func StagedFiles() ([]string, error) {
	out, err := exec.Command("git", "diff", "--cached", "--name-only", "--diff-filter=ACM").Output()
	if err != nil {
		return nil, fmt.Errorf("listing staged files: %w", err)
	}
	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// FilterTOML keeps only paths with a .toml extension.
func FilterTOML(paths []string) []string {
	var out []string
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".toml") {
			out = append(out, p)
		}
	}
	return out
}
