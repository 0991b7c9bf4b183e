package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomlshield/tomlshield/internal/report"
	"github.com/tomlshield/tomlshield/internal/scan"
)

// TextWriter outputs a human-readable findings report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, rep *report.Report) error {
	ew := &errWriter{w: w}

	ew.printf("tomlshield scan — %d file(s)\n", len(rep.Files))
	ew.println(strings.Repeat("─", 60))
	ew.printf("Findings: %d total", rep.Summary.Total)
	if rep.Summary.Total > 0 {
		ew.printf(" (%d by key name, %d by value pattern)",
			rep.Summary.ByReason[string(scan.ReasonKeyName)],
			rep.Summary.ByReason[string(scan.ReasonValuePattern)],
		)
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	if rep.Summary.Total == 0 {
		ew.println("\nNo sensitive values found.")
		return ew.err
	}

	for _, ff := range rep.Files {
		if len(ff.Findings) == 0 {
			continue
		}
		ew.printf("\n%s\n", ff.Path)
		for _, f := range ff.Findings {
			loc := f.Key
			if f.Section != "" {
				loc = fmt.Sprintf("[%s] %s", f.Section, f.Key)
			}
			ew.printf("  %4d  %-40s %s\n", f.Line, loc, reasonLabel(f.Reason))
		}
	}

	return ew.err
}

func reasonLabel(r scan.Reason) string {
	switch r {
	case scan.ReasonKeyName:
		return "(sensitive key name)"
	case scan.ReasonValuePattern:
		return "(secret-shaped value)"
	default:
		return ""
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
