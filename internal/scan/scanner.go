package scan

import (
	"regexp"
	"strings"
)

// sectionPattern matches a [table] header with optional dotted (and quoted)
// name parts and an optional trailing comment. It deliberately does not
// match [[array.of.tables]] headers; those pass through unclassified.
var sectionPattern = regexp.MustCompile(`^\s*\[([A-Za-z0-9_\-." ']+)\]\s*(?:#.*)?$`)

// keyPattern matches bare and dotted keys, including quoted dotted parts
// like properties."moesifKey".
var keyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*(?:\."[^"]*"|\.'[^']*')*$`)

// Scan walks the document line by line and classifies each key/value pair.
// It is pure: the only possible error is option validation, never content.
// Lines that do not parse as a section header, comment, or key/value pair
// are recorded as opaque pass-through lines.
func Scan(doc string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	raws := splitLines(doc)
	res := &Result{Lines: make([]Line, 0, len(raws))}
	section := ""

	for i, rl := range raws {
		ln := Line{
			Raw:     rl.text,
			Term:    rl.term,
			Num:     i + 1,
			Section: section,
		}

		if name, ok := sectionName(rl.text); ok {
			section = name
			ln.Section = name
			res.Lines = append(res.Lines, ln)
			continue
		}

		content := rl.text
		offset := 0
		trimmed := strings.TrimLeft(content, " \t")
		if strings.HasPrefix(trimmed, "#") {
			ln.IsComment = true
			if !opts.IncludeComments {
				res.Lines = append(res.Lines, ln)
				continue
			}
			// Classify the text after the # as if the line were live.
			offset = len(content) - len(trimmed) + 1
			content = content[offset:]
		}

		if p, ok := parsePair(content); ok {
			ln.Key = p.key
			ln.Value = p.value
			ln.HasPair = true
			ln.ValStart = offset + p.valStart
			ln.ValEnd = offset + p.valEnd
			classify(&ln, opts)
		}

		res.Lines = append(res.Lines, ln)
	}

	return res, nil
}

// classify applies the key-name check first, then the value-shape check.
// Empty values are never sensitive: there is nothing to redact.
func classify(ln *Line, opts Options) {
	if ln.Value == "" {
		return
	}
	if SensitiveKey(ln.Key) {
		ln.Sensitive = true
		ln.Reason = ReasonKeyName
		return
	}
	if opts.CheckValues && SensitiveValue(ln.Value) {
		ln.Sensitive = true
		ln.Reason = ReasonValuePattern
	}
}

func sectionName(line string) (string, bool) {
	m := sectionPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

type rawLine struct {
	text string
	term string
}

// splitLines splits on \n while remembering each line's terminator so the
// redactor can rebuild the document byte-for-byte.
func splitLines(doc string) []rawLine {
	var out []rawLine
	for len(doc) > 0 {
		nl := strings.IndexByte(doc, '\n')
		if nl < 0 {
			out = append(out, rawLine{text: doc})
			break
		}
		text, term := doc[:nl], "\n"
		if strings.HasSuffix(text, "\r") {
			text, term = text[:len(text)-1], "\r\n"
		}
		out = append(out, rawLine{text: text, term: term})
		doc = doc[nl+1:]
	}
	return out
}

type pair struct {
	key      string
	value    string
	valStart int
	valEnd   int
}

// parsePair extracts key = value structure from a line, reporting the byte
// span of the value content so redaction can splice it out exactly. A line
// with an unterminated quoted value is malformed, not a pair; it must not
// leak state across lines.
func parsePair(s string) (pair, bool) {
	eq := indexUnquoted(s, '=')
	if eq <= 0 {
		return pair{}, false
	}
	key := strings.TrimSpace(s[:eq])
	if !keyPattern.MatchString(key) {
		return pair{}, false
	}

	start := eq + 1
	for start < len(s) && (s[start] == ' ' || s[start] == '\t') {
		start++
	}
	if start >= len(s) || s[start] == '#' {
		// key = with no value; still a pair, but empty values never redact.
		return pair{key: key, valStart: start, valEnd: start}, true
	}

	if q := s[start]; q == '"' || q == '\'' {
		end := closingQuote(s, start)
		if end < 0 {
			return pair{}, false
		}
		return pair{key: key, value: s[start+1 : end], valStart: start + 1, valEnd: end}, true
	}

	// Bare value: runs to an unquoted inline comment or end of line, with
	// trailing whitespace excluded from the span.
	end := len(s)
	if h := indexUnquoted(s[start:], '#'); h >= 0 {
		end = start + h
	}
	for end > start && (s[end-1] == ' ' || s[end-1] == '\t') {
		end--
	}
	return pair{key: key, value: s[start:end], valStart: start, valEnd: end}, true
}

// indexUnquoted returns the index of the first c outside single or double
// quotes, honoring backslash escapes inside double quotes.
func indexUnquoted(s string, c byte) int {
	var inDouble, inSingle bool
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case inDouble:
			if ch == '\\' {
				i++
			} else if ch == '"' {
				inDouble = false
			}
		case inSingle:
			if ch == '\'' {
				inSingle = false
			}
		case ch == '"':
			inDouble = true
		case ch == '\'':
			inSingle = true
		case ch == c:
			return i
		}
	}
	return -1
}

// closingQuote returns the index of the quote closing the one at open, or
// -1 when the string is unterminated on this line.
func closingQuote(s string, open int) int {
	q := s[open]
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if q == '"' {
				i++
			}
		case q:
			return i
		}
	}
	return -1
}
