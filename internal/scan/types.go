package scan

import (
	"errors"
	"fmt"
)

// DefaultMarker is the replacement text used when no marker is configured.
const DefaultMarker = "***REDACTED***"

// ErrInvalidOptions is returned when scan options fail validation.
var ErrInvalidOptions = errors.New("invalid scan options")

// Reason identifies which heuristic judged a line sensitive.
type Reason string

const (
	// ReasonNone means the line was not judged sensitive.
	ReasonNone Reason = ""
	// ReasonKeyName means the key name matched the sensitive vocabulary.
	ReasonKeyName Reason = "key-name"
	// ReasonValuePattern means the value matched a known secret shape.
	ReasonValuePattern Reason = "value-pattern"
)

// Options controls scanning and redaction behavior. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	// Marker replaces sensitive value spans in redacted output.
	Marker string
	// CheckValues enables value-shape heuristics in addition to key names.
	CheckValues bool
	// IncludeComments classifies commented-out lines as if they were live.
	IncludeComments bool
	// RemoveComments drops comment lines entirely from redacted output.
	RemoveComments bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Marker:      DefaultMarker,
		CheckValues: true,
	}
}

// Validate checks the options before any scanning occurs.
func (o Options) Validate() error {
	if o.Marker == "" {
		return fmt.Errorf("%w: redaction marker must not be empty", ErrInvalidOptions)
	}
	return nil
}

// Line is one scanned input line. Records are never mutated after Scan
// returns; redaction recomputes output from them instead of patching.
type Line struct {
	// Raw is the line text without its terminator.
	Raw string
	// Term is the original line terminator: "\n", "\r\n", or "" for a final
	// unterminated line.
	Term string
	// Num is the 1-based line number.
	Num int
	// Section is the enclosing table name, empty at top level.
	Section string
	// Key and Value hold the parsed pair when HasPair is true. Key keeps its
	// original case; Value has quote delimiters stripped.
	Key   string
	Value string
	// HasPair reports whether the line parsed as key = value.
	HasPair bool
	// IsComment reports a leading # after optional whitespace.
	IsComment bool
	// Sensitive reports the classification outcome for this line.
	Sensitive bool
	// Reason is the first matching heuristic (key name before value shape).
	Reason Reason
	// ValStart and ValEnd delimit the value content within Raw: between the
	// quote delimiters for quoted values, the bare token otherwise.
	ValStart int
	ValEnd   int
}

// Finding is a sensitive line projected into a report entry. It never
// carries the matched value.
type Finding struct {
	Line    int    `json:"line"`
	Key     string `json:"key"`
	Section string `json:"section,omitempty"`
	Reason  Reason `json:"reason"`
}

// Result is the outcome of scanning one document.
type Result struct {
	Lines []Line
}

// Findings returns the sensitive lines in ascending line order.
func (r *Result) Findings() []Finding {
	var out []Finding
	for _, ln := range r.Lines {
		if !ln.Sensitive {
			continue
		}
		out = append(out, Finding{
			Line:    ln.Num,
			Key:     ln.Key,
			Section: ln.Section,
			Reason:  ln.Reason,
		})
	}
	return out
}
