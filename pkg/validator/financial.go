package validator

import (
	"regexp"
	"strings"
)

const (
	ibanMinLength = 15
	ibanMaxLength = 34
)

var bicRegex = regexp.MustCompile(`(?i)^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

// IsIban reports whether s is an IBAN with a valid mod-97 check.
// Spaces are ignored and letters are matched case-insensitively.
func IsIban(s string) bool {
	iban := strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if len(iban) < ibanMinLength || len(iban) > ibanMaxLength {
		return false
	}

	// Country code and check digits move to the end.
	rotated := iban[4:] + iban[:4]

	acc := 0
	for i := 0; i < len(rotated); i++ {
		c := rotated[i]
		switch {
		case c >= '0' && c <= '9':
			acc = (acc*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			// A=10 ... Z=35, fed as two decimal digits.
			v := int(c-'A') + 10
			acc = (acc*10 + v/10) % 97
			acc = (acc*10 + v%10) % 97
		default:
			return false
		}
	}
	return acc == 1
}

// Mod97 returns the remainder of the decimal number spelled by digits modulo 97,
// computed one digit at a time so arbitrarily long inputs never overflow.
// It returns -1 if digits is empty or contains a non-digit byte.
func Mod97(digits string) int {
	if digits == "" {
		return -1
	}
	acc := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return -1
		}
		acc = (acc*10 + int(c-'0')) % 97
	}
	return acc
}

// IsBic reports whether s is an 8 or 11 character BIC/SWIFT code:
// institution (4 letters), country (2 letters), location (2 alnum), optional branch (3 alnum).
func IsBic(s string) bool {
	return strings.TrimSpace(s) != "" && bicRegex.MatchString(s)
}

// IsCurrency reports whether s is an ISO 4217 alphabetic currency code, ignoring case.
func IsCurrency(s string) bool {
	if len(s) != 3 {
		return false
	}
	_, ok := currencyCodes[strings.ToUpper(s)]
	return ok
}
