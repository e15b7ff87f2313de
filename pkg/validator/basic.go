package validator

import (
	"strings"
	"unicode/utf8"
)

// IsNullOrEmpty reports whether s is empty.
func IsNullOrEmpty(s string) bool {
	return s == ""
}

// IsNullOrWhiteSpace reports whether s is empty or consists only of Unicode white space.
func IsNullOrWhiteSpace(s string) bool {
	return strings.TrimSpace(s) == ""
}

func IsNotNullOrEmpty(s string) bool {
	return !IsNullOrEmpty(s)
}

func IsNotNullOrWhiteSpace(s string) bool {
	return !IsNullOrWhiteSpace(s)
}

// HasLength reports whether s has exactly n code points.
func HasLength(s string, n int) bool {
	return utf8.RuneCountInString(s) == n
}

// HasMinLength reports whether s has at least n code points.
func HasMinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// HasMaxLength reports whether s has at most n code points.
func HasMaxLength(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}
