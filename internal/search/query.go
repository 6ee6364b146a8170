package search

import (
	"strings"
)

// NormalizeQuery trims and lowercases a free-text query. Inner whitespace is
// kept as typed so phrase matching sees the same text the user entered.
func NormalizeQuery(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Keywords splits a query on whitespace into lowercase keywords.
func Keywords(input string) []string {
	words := strings.Fields(NormalizeQuery(input))
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// ParseYear extracts a year from a free-form field. It accepts a bare
// integer ("2015") or a value whose first four characters are digits
// ("2015-04-01"). Anything else reports false.
func ParseYear(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if n, ok := parseDigits(raw); ok {
		return n, true
	}
	if len(raw) > 4 {
		if n, ok := parseDigits(raw[:4]); ok && !isDigit(raw[4]) {
			return n, true
		}
	}
	return 0, false
}

func parseDigits(s string) (int, bool) {
	if s == "" || len(s) > 9 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	if haystack == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}
