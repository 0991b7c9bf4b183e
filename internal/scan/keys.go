package scan

import (
	"regexp"
	"strings"
)

// keyExclusions match configuration keys that merely talk about secrets
// (toggles, time windows, size bounds). An exclusion match always wins over
// a sensitive-name match, so max_token_size stays clean despite "token".
var keyExclusions = []*regexp.Regexp{
	// Boolean/toggle settings
	regexp.MustCompile(`^allow_`),
	regexp.MustCompile(`^enable_`),
	regexp.MustCompile(`^disable_`),
	regexp.MustCompile(`^show_`),
	regexp.MustCompile(`^display_`),
	regexp.MustCompile(`^retain_`),
	regexp.MustCompile(`^is_`),
	regexp.MustCompile(`^has_`),
	// Time/duration settings
	regexp.MustCompile(`_time$`),
	regexp.MustCompile(`_period$`),
	regexp.MustCompile(`_expiry$`),
	regexp.MustCompile(`_timeout$`),
	regexp.MustCompile(`_ttl$`),
	regexp.MustCompile(`_validity_period$`),
	regexp.MustCompile(`_interval$`),
	// Size/count settings
	regexp.MustCompile(`_size$`),
	regexp.MustCompile(`_count$`),
	regexp.MustCompile(`_length$`),
	regexp.MustCompile(`_limit$`),
	regexp.MustCompile(`^max_`),
	regexp.MustCompile(`^min_`),
	// Other bound-like settings
	regexp.MustCompile(`_threads$`),
	regexp.MustCompile(`_pool_size$`),
}

// sensitiveKeyTerms are substring-matched against the lowercased key.
var sensitiveKeyTerms = []string{
	"password", "passwd", "pwd",
	"key", "apikey", "api_key", "secret",
	"auth_token", "access_token", "refresh_token", "bearer_token",
	"credential", "credentials",
	"key_password",
	"moesifkey", "embedding_endpoint_key",
}

// tokenKeyPatterns match "token" only at word boundaries so that keys like
// tokenizer are not flagged.
var tokenKeyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\btoken\b`),
	regexp.MustCompile(`_token$`),
	regexp.MustCompile(`^token_`),
}

var keyQuoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// SensitiveKey reports whether a key name alone marks its value as
// sensitive. Matching is case-insensitive; quote characters inside dotted
// keys (properties."moesifKey") are ignored.
func SensitiveKey(key string) bool {
	k := strings.ToLower(keyQuoteStripper.Replace(key))

	for _, re := range keyExclusions {
		if re.MatchString(k) {
			return false
		}
	}

	for _, term := range sensitiveKeyTerms {
		if strings.Contains(k, term) {
			return true
		}
	}

	for _, re := range tokenKeyPatterns {
		if re.MatchString(k) {
			return true
		}
	}

	return false
}
