package output

import (
	"io"

	"github.com/tomlshield/tomlshield/internal/report"
)

// MarkdownWriter outputs a findings report as GitHub-flavored markdown,
// suitable for PR comments.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, rep *report.Report) error {
	ew := &errWriter{w: w}

	ew.println("## tomlshield scan")
	ew.println("")

	if rep.Summary.Total == 0 {
		ew.println("No sensitive values found.")
		return ew.err
	}

	ew.printf("**%d finding(s)** across %d file(s).\n\n", rep.Summary.Total, len(rep.Files))
	ew.println("| File | Line | Section | Key | Reason |")
	ew.println("|------|-----:|---------|-----|--------|")
	for _, ff := range rep.Files {
		for _, f := range ff.Findings {
			section := f.Section
			if section == "" {
				section = "—"
			}
			ew.printf("| `%s` | %d | `%s` | `%s` | %s |\n",
				ff.Path, f.Line, section, f.Key, reasonLabel(f.Reason))
		}
	}

	return ew.err
}
