package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var (
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
	ansiRegex    = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)
)

// DefaultInputLimit is the rune limit applied by SanitizeUserInput.
const DefaultInputLimit = 10000

// NormalizeWhitespace collapses every run of white space into one space and trims the ends.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveControlChars drops control characters other than tab, CR and LF.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// RemoveControlSequences strips ANSI escape sequences, then control characters.
func RemoveControlSequences(s string) string {
	return RemoveControlChars(ansiRegex.ReplaceAllString(s, ""))
}

// StripHTML removes tags and unescapes entities.
func StripHTML(s string) string {
	return html.UnescapeString(htmlTagRegex.ReplaceAllString(s, ""))
}

// Truncate returns at most n runes of s. Non-positive n yields "".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// MaskString keeps visible runes at each end of s and replaces the rest with '*'.
// Strings too short to hide anything are masked completely.
func MaskString(s string, visible int) string {
	if visible < 0 {
		visible = 0
	}
	runes := []rune(s)
	n := len(runes)
	if n <= visible*2 {
		return strings.Repeat("*", n)
	}
	return string(runes[:visible]) + strings.Repeat("*", n-visible*2) + string(runes[n-visible:])
}

// SanitizeUserInput removes NUL bytes and control sequences, trims, and
// truncates to DefaultInputLimit runes.
var SanitizeUserInput = Compose(
	func(s string) string { return strings.ReplaceAll(s, "\x00", "") },
	RemoveControlSequences,
	strings.TrimSpace,
	func(s string) string { return Truncate(s, DefaultInputLimit) },
)
