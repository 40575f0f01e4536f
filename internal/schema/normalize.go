package schema

import (
	"strings"
	"unicode"
)

// NormalizeExact canonicalizes a field name for exact comparison.
func NormalizeExact(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeFuzzy additionally strips separators and every other
// non-alphanumeric rune, so account_id, AccountId and "Account ID"
// all collapse to accountid.
func NormalizeFuzzy(name string) string {
	exact := NormalizeExact(name)
	var b strings.Builder
	b.Grow(len(exact))
	for _, r := range exact {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
