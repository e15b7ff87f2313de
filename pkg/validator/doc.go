// Package validator provides total, side-effect-free string predicates and a
// small rule layer for reporting failures per field.
//
// Predicates never return errors for malformed input: empty or malformed
// strings are simply "not valid". The one exception is MatchesRegex, whose
// pattern argument is caller-supplied code; a pattern that does not compile is
// reported as a *PatternError matching ErrInvalidPattern.
//
// # Groups
//
//   - basic.go      – empty, blank and length checks (lengths count code points)
//   - chars.go      – character classes (IsAlpha, IsNumeric, HasDigits, ...)
//   - substring.go  – ContainsAny/All, StartsWithAny, EndsWithAny, MatchesRegex
//   - format.go     – GUID, email, URL, base64, identifier, strong password
//   - financial.go  – IBAN (mod-97), BIC, ISO 4217 currency codes
//   - structured.go – JSON and XML well-formedness
//
// "Is" predicates require every rune to match and reject the empty string.
// "Has" predicates require at least one matching rune. Case-aware predicates
// use invariant rules by default; the *In variants take a language.Tag.
//
// # Rules
//
// Rule constructors wrap predicates for declarative validation:
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.ValidIBAN("iban", iban),
//	    validator.StrongPassword("password", pw, validator.MinLength(12)),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Fields(), verrs.Get("iban") ...
//	}
//
// # Named checks
//
// Lookup and Names expose the predicates under stable snake_case names, and
// RegisterTags makes them available to github.com/go-playground/validator/v10
// as `validate:"str_<name>"` struct tags.
package validator
