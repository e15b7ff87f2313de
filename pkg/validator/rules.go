package validator

import "fmt"

// Required fails when value is empty or white space only.
func Required(field, value string) Rule {
	return newRule(field, "required", "field is required",
		func() bool { return IsNotNullOrWhiteSpace(value) }, nil)
}

func MinLen(field, value string, min int) Rule {
	return newRule(field, "min_length", fmt.Sprintf("must be at least %d characters long", min),
		func() bool { return HasMinLength(value, min) }, map[string]any{"min": min})
}

func MaxLen(field, value string, max int) Rule {
	return newRule(field, "max_length", fmt.Sprintf("must be at most %d characters long", max),
		func() bool { return HasMaxLength(value, max) }, map[string]any{"max": max})
}

func Len(field, value string, exact int) Rule {
	return newRule(field, "exact_length", fmt.Sprintf("must be exactly %d characters long", exact),
		func() bool { return HasLength(value, exact) }, map[string]any{"length": exact})
}

func ValidEmail(field, value string) Rule {
	return newRule(field, "email", "must be a valid email address",
		func() bool { return IsEmail(value) }, nil)
}

func ValidURL(field, value string) Rule {
	return newRule(field, "url", "must be a valid http, https or ftp URL",
		func() bool { return IsUrl(value) }, nil)
}

func ValidGUID(field, value string) Rule {
	return newRule(field, "guid", "must be a valid GUID",
		func() bool { return IsGuid(value) }, nil)
}

func ValidIdentifier(field, value string) Rule {
	return newRule(field, "identifier", "must start with a letter or underscore and contain only letters, digits and underscores",
		func() bool { return IsIdentifier(value) }, nil)
}

// ValidIBAN validates an IBAN including its mod-97 checksum.
func ValidIBAN(field, value string) Rule {
	return newRule(field, "iban", "must be a valid IBAN",
		func() bool { return IsIban(value) }, nil)
}

func ValidBIC(field, value string) Rule {
	return newRule(field, "bic", "must be a valid BIC/SWIFT code",
		func() bool { return IsBic(value) }, nil)
}

// ValidCurrencyCode validates that a string is an ISO 4217 currency code.
func ValidCurrencyCode(field, value string) Rule {
	return newRule(field, "currency_code", "must be a valid ISO 4217 currency code",
		func() bool { return IsCurrency(value) }, nil)
}

func ValidJSON(field, value string) Rule {
	return newRule(field, "json", "must be valid JSON",
		func() bool { return IsJson(value) }, nil)
}

func ValidXML(field, value string) Rule {
	return newRule(field, "xml", "must be a well-formed XML document",
		func() bool { return IsXml(value) }, nil)
}

// StrongPassword applies IsStrongPassword with the given policy options.
func StrongPassword(field, value string, opts ...PasswordOption) Rule {
	return newRule(field, "strong_password", "password does not meet strength requirements",
		func() bool { return IsStrongPassword(value, opts...) }, nil)
}

// Matches fails when value does not match pattern. An invalid pattern fails
// the rule and the compile error is reported as the message.
func Matches(field, value, pattern string) Rule {
	message := "must match the required pattern"
	if _, err := compilePattern(pattern); err != nil {
		message = err.Error()
	}
	return newRule(field, "pattern", message, func() bool {
		ok, err := MatchesRegex(value, pattern)
		return err == nil && ok
	}, map[string]any{"pattern": pattern})
}
