// Package output formats findings reports for different consumers.
//
// Supported formats: text (human-readable), json (full report structure),
// markdown (PR comment tables), and sarif (SARIF v2.1.0 for code scanning
// integrations).
package output
