package redact

import (
	"strings"

	"github.com/tomlshield/tomlshield/internal/scan"
)

// Output is the result of rendering a scan: the redacted document and the
// findings that drove it. Findings are populated whether or not the caller
// uses the text.
type Output struct {
	Text     string
	Findings []scan.Finding
}

// Render rebuilds the document from scan records. Sensitive value spans are
// replaced by the marker; comment lines are dropped entirely when
// RemoveComments is set; every other line is emitted byte-identical to the
// input, terminator included.
func Render(res *scan.Result, opts scan.Options) Output {
	var b strings.Builder
	b.Grow(docSize(res))

	for _, ln := range res.Lines {
		if opts.RemoveComments && ln.IsComment {
			continue
		}
		if ln.Sensitive {
			b.WriteString(ln.Raw[:ln.ValStart])
			b.WriteString(opts.Marker)
			b.WriteString(ln.Raw[ln.ValEnd:])
		} else {
			b.WriteString(ln.Raw)
		}
		b.WriteString(ln.Term)
	}

	return Output{Text: b.String(), Findings: res.Findings()}
}

func docSize(res *scan.Result) int {
	n := 0
	for _, ln := range res.Lines {
		n += len(ln.Raw) + len(ln.Term)
	}
	return n
}
