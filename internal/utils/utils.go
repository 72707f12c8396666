package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// FirstField returns the first whitespace-delimited token of s, or ""
// when s contains no tokens.
func FirstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// TruncateRunes cuts s down to at most n runes. Slicing bytes instead
// would split multi-byte characters.
func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
