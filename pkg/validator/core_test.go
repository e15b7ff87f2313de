package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stryng/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("joins field messages", func(t *testing.T) {
		t.Parallel()
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "iban", Message: "must be a valid IBAN"})
		assert.Equal(t, "validation failed: email: is required; iban: must be a valid IBAN", errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
	errs.Add(validator.ValidationError{Field: "password", Message: "too weak"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("username"))
	assert.Equal(t, []string{"too short", "too weak"}, errs.Get("password"))
	assert.Nil(t, errs.Get("username"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "Ada"),
			validator.ValidEmail("email", "ada@example.com"),
			validator.ValidIBAN("iban", "DE89370400440532013000"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "  "),
			validator.ValidEmail("email", "ada@example.com"),
			validator.ValidBIC("bic", "DEUT"),
			validator.ValidCurrencyCode("currency", "ABC"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, []string{"name", "bic", "currency"}, errs.Fields())
		assert.Equal(t, "required", errs[0].Check)
	})

	t.Run("no rules", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))

	err := validator.Apply(validator.Required("name", ""))
	wrapped := fmt.Errorf("create user: %w", err)
	errs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(errors.New("other")))
	assert.False(t, validator.IsValidationError(nil))
}

func TestRuleTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rule   validator.Rule
		key    string
		values map[string]any
	}{
		{"min length", validator.MinLen("name", "Al", 3), "validation.min_length", map[string]any{"field": "name", "min": 3}},
		{"max length", validator.MaxLen("name", "Alexander", 5), "validation.max_length", map[string]any{"field": "name", "max": 5}},
		{"exact length", validator.Len("code", "AB", 3), "validation.exact_length", map[string]any{"field": "code", "length": 3}},
		{"pattern", validator.Matches("sku", "abc", `^\d+$`), "validation.pattern", map[string]any{"field": "sku", "pattern": `^\d+$`}},
		{"json", validator.ValidJSON("payload", "{"), "validation.json", map[string]any{"field": "payload"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, tt.rule.Check())
			assert.Equal(t, tt.key, tt.rule.Error.TranslationKey)
			assert.Equal(t, tt.values, tt.rule.Error.TranslationValues)
		})
	}
}

func TestRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		good validator.Rule
		bad  validator.Rule
	}{
		{"required", validator.Required("f", "x"), validator.Required("f", "")},
		{"min length", validator.MinLen("f", "héllo", 5), validator.MinLen("f", "hé", 3)},
		{"max length", validator.MaxLen("f", "héllo", 5), validator.MaxLen("f", "héllo!", 5)},
		{"exact length", validator.Len("f", "abc", 3), validator.Len("f", "ab", 3)},
		{"email", validator.ValidEmail("f", "a@b.co"), validator.ValidEmail("f", "a@b")},
		{"url", validator.ValidURL("f", "https://example.com"), validator.ValidURL("f", "example.com")},
		{"guid", validator.ValidGUID("f", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"), validator.ValidGUID("f", "6ba7b810")},
		{"identifier", validator.ValidIdentifier("f", "_id"), validator.ValidIdentifier("f", "1id")},
		{"iban", validator.ValidIBAN("f", "GB82WEST12345698765432"), validator.ValidIBAN("f", "GB83WEST12345698765432")},
		{"bic", validator.ValidBIC("f", "DEUTDEFF"), validator.ValidBIC("f", "DEUTDE")},
		{"currency", validator.ValidCurrencyCode("f", "EUR"), validator.ValidCurrencyCode("f", "EURO")},
		{"json", validator.ValidJSON("f", `{"a":1}`), validator.ValidJSON("f", `{a:1}`)},
		{"xml", validator.ValidXML("f", `<a/>`), validator.ValidXML("f", `<a>`)},
		{"password", validator.StrongPassword("f", "Abcdef1!"), validator.StrongPassword("f", "abcdefg1!")},
		{"pattern", validator.Matches("f", "A-1", `^[A-Z]-\d$`), validator.Matches("f", "A1", `^[A-Z]-\d$`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tt.good.Check())
			assert.False(t, tt.bad.Check())
			assert.Equal(t, "f", tt.bad.Error.Field)
			assert.NotEmpty(t, tt.bad.Error.Message)
		})
	}

	t.Run("password options", func(t *testing.T) {
		t.Parallel()
		rule := validator.StrongPassword("f", "Abcdefg1", validator.RequireSpecial(false))
		assert.True(t, rule.Check())
	})

	t.Run("invalid pattern fails with compile message", func(t *testing.T) {
		t.Parallel()
		rule := validator.Matches("f", "anything", "(")
		assert.False(t, rule.Check())
		assert.Contains(t, rule.Error.Message, validator.ErrInvalidPattern.Error())
	})
}
