package scan

import (
	"regexp"
	"strings"
)

var (
	// Base64 encoded credentials: long strings over the base64 alphabet.
	base64BlobPattern = regexp.MustCompile(`^[A-Za-z0-9+/]{40,}={0,2}$`)
	// Plain numbers (ports, timeouts, versions) are never secrets.
	numericPattern = regexp.MustCompile(`^[+-]?[0-9]+(?:\.[0-9]+)?(?:[eE][+-]?[0-9]+)?$`)
)

// secretValuePrefixes are self-identifying key prefixes used by common
// providers.
var secretValuePrefixes = []string{
	"sk-",         // OpenAI / Anthropic style
	"ghp_",        // GitHub personal access token
	"gho_",        // GitHub OAuth token
	"ghu_", "ghs_", // GitHub app tokens
	"github_pat_", // GitHub fine-grained token
	"glpat-",      // GitLab personal access token
	"xoxb-", "xoxp-", // Slack tokens
	"AKIA", // AWS access key ID
}

// SensitiveValue reports whether a value string looks like a secret,
// independent of its key name. The caller strips quote delimiters first.
func SensitiveValue(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}

	// Variable references resolve elsewhere; the literal is not a secret.
	if strings.HasPrefix(v, "$") {
		return false
	}
	switch strings.ToLower(v) {
	case "true", "false":
		return false
	}
	if numericPattern.MatchString(v) {
		return false
	}

	// JWTs carry the base64 of {"alg": as their first bytes.
	if strings.HasPrefix(v, "eyJ") {
		return true
	}
	if base64BlobPattern.MatchString(v) {
		return true
	}
	for _, p := range secretValuePrefixes {
		if strings.HasPrefix(v, p) {
			return true
		}
	}
	return looksLikeAPIKey(v)
}

// looksLikeAPIKey matches long contiguous alphanumeric tokens that mix at
// least two character classes, e.g. Xk29fmQp81LzR4tYw6Bn. Single-class
// tokens (long numeric IDs, lowercase words) stay clean.
func looksLikeAPIKey(v string) bool {
	if len(v) < 20 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range v {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			return false
		}
	}
	classes := 0
	for _, set := range []bool{upper, lower, digit} {
		if set {
			classes++
		}
	}
	return classes >= 2
}
