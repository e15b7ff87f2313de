package validator_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stryng/pkg/validator"
)

func TestNames(t *testing.T) {
	t.Parallel()

	names := validator.Names()
	assert.True(t, slices.IsSorted(names))
	for _, n := range []string{"iban", "bic", "currency", "json", "xml", "email", "guid", "strong_password"} {
		assert.Contains(t, names, n)
	}
	for _, n := range names {
		check, ok := validator.Lookup(n)
		assert.True(t, ok, n)
		assert.NotNil(t, check, n)
		assert.False(t, check(""), "%s should reject empty input", n)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	ok, err := validator.Run("iban", "GB82 WEST 1234 5698 7654 32")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = validator.Run("numeric", "12a")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = validator.Run("palindrome", "abba")
	require.ErrorIs(t, err, validator.ErrUnknownCheck)
	assert.False(t, ok)

	_, found := validator.Lookup("palindrome")
	assert.False(t, found)
}

type payment struct {
	Account  string `validate:"required,str_iban"`
	Bank     string `validate:"str_bic"`
	Currency string `validate:"str_currency"`
	Note     string `validate:"omitempty,str_not_blank"`
}

func TestStructTags(t *testing.T) {
	t.Parallel()

	v, err := validator.NewStructValidator()
	require.NoError(t, err)

	t.Run("valid struct", func(t *testing.T) {
		t.Parallel()
		err := v.Struct(payment{
			Account:  "DE89 3704 0044 0532 0130 00",
			Bank:     "DEUTDEFF",
			Currency: "eur",
		})
		assert.NoError(t, err)
	})

	t.Run("invalid fields", func(t *testing.T) {
		t.Parallel()
		err := v.Struct(payment{
			Account:  "DE00 3704 0044 0532 0130 00",
			Bank:     "DEUTDEFF",
			Currency: "EURO",
			Note:     "   ",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "str_iban")
		assert.Contains(t, err.Error(), "str_currency")
		assert.Contains(t, err.Error(), "str_not_blank")
		assert.NotContains(t, err.Error(), "str_bic")
	})

	t.Run("single value", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, v.Var(`{"ok":true}`, validator.TagPrefix+"json"))
		assert.Error(t, v.Var("{", validator.TagPrefix+"json"))
	})

	t.Run("non-string field fails", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, v.Var(123, "str_numeric"))
	})
}
