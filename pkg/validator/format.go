package validator

import (
	"encoding/base64"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	// Permissive: one @, no whitespace, a dot somewhere after the @.
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	urlRegex = regexp.MustCompile(`(?i)^(https?|ftp)://[^\s/$.?#].[^\s]*$`)

	// {0xXXXXXXXX,0xXXXX,0xXXXX,{0xXX,0xXX,0xXX,0xXX,0xXX,0xXX,0xXX,0xXX}}, leading zeros optional.
	guidHexFieldsRegex = regexp.MustCompile(`^\{0[xX][0-9a-fA-F]{1,8},0[xX][0-9a-fA-F]{1,4},0[xX][0-9a-fA-F]{1,4},\{(0[xX][0-9a-fA-F]{1,2},){7}0[xX][0-9a-fA-F]{1,2}\}\}$`)
)

// IsGuid reports whether s is a GUID in one of the standard text forms:
// 32 hex digits, 8-4-4-4-12 groups, the grouped form wrapped in braces or
// parentheses, or the hex-field form {0x00000000,0x0000,0x0000,{0x00,...}}.
// Surrounding white space is ignored. The urn:uuid: form is not a GUID.
func IsGuid(s string) bool {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{0x") || strings.HasPrefix(s, "{0X") {
		return guidHexFieldsRegex.MatchString(strings.Join(strings.Fields(s), ""))
	}
	switch len(s) {
	case 32, 36:
	case 38:
		// uuid.Parse skips the wrapper without checking it.
		if (s[0] != '{' || s[37] != '}') && (s[0] != '(' || s[37] != ')') {
			return false
		}
		s = s[1:37]
	default:
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsEmail reports whether s looks like local@domain.tld.
// This is a shape check, not RFC 5322 validation.
func IsEmail(s string) bool {
	return s != "" && emailRegex.MatchString(s)
}

// IsUrl reports whether s is an http, https or ftp URL with a non-empty host part.
func IsUrl(s string) bool {
	return s != "" && urlRegex.MatchString(s)
}

// IsBase64 reports whether s decodes with the standard padded alphabet.
func IsBase64(s string) bool {
	if s == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(s)
	return err == nil
}

// IsIdentifier reports whether s starts with a letter or underscore and
// continues with letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// PasswordOption configures IsStrongPassword.
type PasswordOption func(*passwordPolicy)

type passwordPolicy struct {
	minLength      int
	requireUpper   bool
	requireLower   bool
	requireDigit   bool
	requireSpecial bool
}

func defaultPasswordPolicy() passwordPolicy {
	return passwordPolicy{
		minLength:      8,
		requireUpper:   true,
		requireLower:   true,
		requireDigit:   true,
		requireSpecial: true,
	}
}

// MinLength sets the minimum number of code points. Default is 8.
func MinLength(n int) PasswordOption {
	return func(p *passwordPolicy) { p.minLength = n }
}

func RequireUpper(enabled bool) PasswordOption {
	return func(p *passwordPolicy) { p.requireUpper = enabled }
}

func RequireLower(enabled bool) PasswordOption {
	return func(p *passwordPolicy) { p.requireLower = enabled }
}

func RequireDigit(enabled bool) PasswordOption {
	return func(p *passwordPolicy) { p.requireDigit = enabled }
}

// RequireSpecial requires at least one rune that is neither a letter nor a digit.
// Unlike HasSpecialChars this does not consult DefaultSpecialChars.
func RequireSpecial(enabled bool) PasswordOption {
	return func(p *passwordPolicy) { p.requireSpecial = enabled }
}

// IsStrongPassword reports whether s satisfies every enabled requirement of the policy.
func IsStrongPassword(s string, opts ...PasswordOption) bool {
	p := defaultPasswordPolicy()
	for _, opt := range opts {
		opt(&p)
	}

	if s == "" || utf8.RuneCountInString(s) < p.minLength {
		return false
	}
	if p.requireUpper && !some(s, unicode.IsUpper) {
		return false
	}
	if p.requireLower && !some(s, unicode.IsLower) {
		return false
	}
	if p.requireDigit && !some(s, unicode.IsDigit) {
		return false
	}
	return !p.requireSpecial || !all(s, isLetterOrDigit)
}
