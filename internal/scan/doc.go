// Package scan classifies lines of TOML-like configuration documents as
// sensitive or not.
//
// Detection layers two heuristics with explicit exclusion rules: key names
// are matched against a secret vocabulary (password, token, api_key, ...)
// unless an exclusion family (allow_*, *_timeout, max_*, ...) claims the key
// first, and values are matched against known secret shapes (JWT prefix,
// long base64 blobs, prefixed or high-entropy API keys).
//
// The scanner is a deliberately narrow line-based state machine, not a TOML
// grammar: it tracks the current [section], detects comments, and splits
// key = value on the first unquoted equals sign. Anything else — blank
// lines, array-of-table headers, multi-line constructs — is an opaque
// pass-through line, which is what allows redaction to preserve every byte
// it does not understand.
package scan
