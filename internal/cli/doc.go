// Package cli implements the tomlshield command tree.
//
// Commands: scan (report findings), redact (emit a redacted copy), config
// (manage the config file), hook (git pre-commit gate), version. Commands
// set a package-level exit code consumed by Run so the process exits 0 on a
// clean scan, 1 when findings exist, 2 on usage errors, and 3 on runtime
// errors.
package cli
