package cli

import (
	"fmt"
	"io"
	"os"
)

// readInput reads a document from path, or from stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// writeInPlace rewrites path, keeping its existing permission bits.
func writeInPlace(path, text string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(text), mode); err != nil {
		return fmt.Errorf("rewriting %s: %w", path, err)
	}
	return nil
}

// displayPath labels stdin input in reports.
func displayPath(path string) string {
	if path == "-" {
		return "(stdin)"
	}
	return path
}
