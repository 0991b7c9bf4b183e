// Package redact renders scan results into redacted document text.
//
// Redaction is a span splice: only the value content of lines flagged
// sensitive is replaced, so section headers, keys, indentation, quote
// characters, inline comments, and line terminators survive untouched.
// Rendering the same document twice is idempotent because the default
// marker matches none of the value-shape heuristics.
package redact
