package validator

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSpecialChars is the character set used by HasSpecialChars.
const DefaultSpecialChars = "!@#$%^&*()-_=+[]{}|;:'\",.<>?/`~"

// all reports whether s is non-empty and every rune satisfies fn.
func all(s string, fn func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !fn(r) {
			return false
		}
	}
	return true
}

// some reports whether at least one rune of s satisfies fn.
func some(s string, fn func(rune) bool) bool {
	return strings.IndexFunc(s, fn) >= 0
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsAlpha reports whether s is non-empty and contains only letters.
func IsAlpha(s string) bool {
	return all(s, unicode.IsLetter)
}

// IsAlphaNumeric reports whether s is non-empty and contains only letters or digits.
func IsAlphaNumeric(s string) bool {
	return all(s, isLetterOrDigit)
}

// IsNumeric reports whether s is non-empty and contains only decimal digits.
func IsNumeric(s string) bool {
	return all(s, unicode.IsDigit)
}

// IsBinary reports whether s is non-empty and contains only '0' and '1'.
func IsBinary(s string) bool {
	return all(s, func(r rune) bool { return r == '0' || r == '1' })
}

// IsHexadecimal reports whether s is non-empty and contains only 0-9, a-f and A-F.
func IsHexadecimal(s string) bool {
	return all(s, isHexDigit)
}

// IsUpperAlpha reports whether s contains only uppercase letters, using invariant case rules.
func IsUpperAlpha(s string) bool {
	return IsUpperAlphaIn(s, language.Und)
}

// IsUpperAlphaIn is IsUpperAlpha with the case rules of tag.
func IsUpperAlphaIn(s string, tag language.Tag) bool {
	upper := cases.Upper(tag)
	return all(s, func(r rune) bool {
		return unicode.IsLetter(r) && sameAfter(upper, r)
	})
}

// IsLowerAlpha reports whether s contains only lowercase letters, using invariant case rules.
func IsLowerAlpha(s string) bool {
	return IsLowerAlphaIn(s, language.Und)
}

// IsLowerAlphaIn is IsLowerAlpha with the case rules of tag.
func IsLowerAlphaIn(s string, tag language.Tag) bool {
	lower := cases.Lower(tag)
	return all(s, func(r rune) bool {
		return unicode.IsLetter(r) && sameAfter(lower, r)
	})
}

// IsUpperCase reports whether every letter in s is uppercase.
// Non-letters are ignored, but the empty string is still rejected.
func IsUpperCase(s string) bool {
	return IsUpperCaseIn(s, language.Und)
}

func IsUpperCaseIn(s string, tag language.Tag) bool {
	upper := cases.Upper(tag)
	return all(s, func(r rune) bool {
		return !unicode.IsLetter(r) || sameAfter(upper, r)
	})
}

// IsLowerCase reports whether every letter in s is lowercase.
// Non-letters are ignored, but the empty string is still rejected.
func IsLowerCase(s string) bool {
	return IsLowerCaseIn(s, language.Und)
}

func IsLowerCaseIn(s string, tag language.Tag) bool {
	lower := cases.Lower(tag)
	return all(s, func(r rune) bool {
		return !unicode.IsLetter(r) || sameAfter(lower, r)
	})
}

// sameAfter reports whether mapping r through c leaves it unchanged.
func sameAfter(c cases.Caser, r rune) bool {
	in := string(r)
	return c.String(in) == in
}

// HasDigits reports whether s contains at least one decimal digit.
func HasDigits(s string) bool {
	return some(s, unicode.IsDigit)
}

// HasLetters reports whether s contains at least one letter.
func HasLetters(s string) bool {
	return some(s, unicode.IsLetter)
}

// HasSpecialChars reports whether s contains a rune from DefaultSpecialChars or extra.
func HasSpecialChars(s string, extra ...rune) bool {
	return some(s, func(r rune) bool {
		return strings.ContainsRune(DefaultSpecialChars, r) || slices.Contains(extra, r)
	})
}

// ContainsOnly reports whether s is non-empty and every rune is one of allowed.
func ContainsOnly(s string, allowed ...rune) bool {
	return all(s, func(r rune) bool { return slices.Contains(allowed, r) })
}

// ContainsNone reports whether s is non-empty and no rune is one of forbidden.
func ContainsNone(s string, forbidden ...rune) bool {
	return all(s, func(r rune) bool { return !slices.Contains(forbidden, r) })
}
