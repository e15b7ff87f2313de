package validator

import (
	"fmt"
	"maps"
	"slices"
)

// Check is a single-string predicate.
type Check func(string) bool

// checks maps stable names to predicates. Read-only after init.
var checks = map[string]Check{
	"not_empty":       IsNotNullOrEmpty,
	"not_blank":       IsNotNullOrWhiteSpace,
	"alpha":           IsAlpha,
	"alphanumeric":    IsAlphaNumeric,
	"numeric":         IsNumeric,
	"binary":          IsBinary,
	"hex":             IsHexadecimal,
	"upper_alpha":     IsUpperAlpha,
	"lower_alpha":     IsLowerAlpha,
	"upper_case":      IsUpperCase,
	"lower_case":      IsLowerCase,
	"has_digits":      HasDigits,
	"has_letters":     HasLetters,
	"has_special":     func(s string) bool { return HasSpecialChars(s) },
	"guid":            IsGuid,
	"email":           IsEmail,
	"url":             IsUrl,
	"base64":          IsBase64,
	"identifier":      IsIdentifier,
	"strong_password": func(s string) bool { return IsStrongPassword(s) },
	"iban":            IsIban,
	"bic":             IsBic,
	"currency":        IsCurrency,
	"json":            IsJson,
	"xml":             IsXml,
}

// Lookup returns the check registered under name.
func Lookup(name string) (Check, bool) {
	c, ok := checks[name]
	return c, ok
}

// Names returns all registered check names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(checks))
}

// Run applies the named check to value.
func Run(name, value string) (bool, error) {
	c, ok := Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownCheck, name)
	}
	return c(value), nil
}
