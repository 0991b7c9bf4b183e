// Tomlshield is a CLI for detecting and redacting secrets in TOML
// configuration files.
//
// It classifies key/value pairs by key name and value shape, reports
// findings with deterministic exit codes suitable for CI gating and git
// hooks, and can rewrite documents with sensitive values replaced by a
// marker while preserving every other byte.
//
// Usage:
//
//	tomlshield scan deployment.toml           # report findings, exit 1 if any
//	tomlshield scan --staged --format sarif   # gate staged TOML files
//	tomlshield redact deployment.toml         # redacted copy to stdout
//	tomlshield redact --in-place --backup app.toml
//	cat app.toml | tomlshield redact -        # redact a piped document
//
// See https://github.com/tomlshield/tomlshield for full documentation.
package main
