package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/stryng/pkg/validator"
)

func TestCharacterClasses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    func(string) bool
		valid []string
		bad   []string
	}{
		{"IsAlpha", validator.IsAlpha, []string{"abc", "ÄÖÜß", "日本"}, []string{"", "abc1", "a b", "a-b"}},
		{"IsAlphaNumeric", validator.IsAlphaNumeric, []string{"abc123", "Ä1", "42"}, []string{"", "abc 1", "a_b"}},
		{"IsNumeric", validator.IsNumeric, []string{"0123", "١٢٣"}, []string{"", "12.3", "-1", "1e3"}},
		{"IsBinary", validator.IsBinary, []string{"0", "0101"}, []string{"", "012", "0b1"}},
		{"IsHexadecimal", validator.IsHexadecimal, []string{"DEADbeef09", "f"}, []string{"", "0xFF", "g1"}},
		{"IsUpperAlpha", validator.IsUpperAlpha, []string{"ABC", "ÄÖÜ"}, []string{"", "ABc", "AB1", "A B"}},
		{"IsLowerAlpha", validator.IsLowerAlpha, []string{"abc", "äöü"}, []string{"", "abC", "ab1"}},
		{"IsUpperCase", validator.IsUpperCase, []string{"HELLO WORLD 123", "123", "É!"}, []string{"", "Hello", "hELLO"}},
		{"IsLowerCase", validator.IsLowerCase, []string{"hello world 123", "123", "é!"}, []string{"", "Hello", "hellO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, s := range tt.valid {
				assert.True(t, tt.fn(s), "%s(%q)", tt.name, s)
			}
			for _, s := range tt.bad {
				assert.False(t, tt.fn(s), "%s(%q)", tt.name, s)
			}
		})
	}
}

func TestCaseWithCulture(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsUpperAlphaIn("İSTANBUL", language.Turkish))
	assert.True(t, validator.IsLowerAlphaIn("ıstanbul", language.Turkish))
	assert.False(t, validator.IsLowerAlphaIn("Istanbul", language.Turkish))
	assert.True(t, validator.IsUpperCaseIn("STRASSE 1", language.German))
	assert.True(t, validator.IsLowerCaseIn("straße 1", language.German))
	assert.False(t, validator.IsUpperCaseIn("", language.German))
}

func TestHasPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.HasDigits("abc1"))
	assert.True(t, validator.HasDigits("٣"))
	assert.False(t, validator.HasDigits("abc"))
	assert.False(t, validator.HasDigits(""))

	assert.True(t, validator.HasLetters("123a"))
	assert.False(t, validator.HasLetters("123!"))
	assert.False(t, validator.HasLetters(""))
}

func TestHasSpecialChars(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.HasSpecialChars("abc!"))
	assert.True(t, validator.HasSpecialChars("a~b"))
	assert.False(t, validator.HasSpecialChars("abc"))
	assert.False(t, validator.HasSpecialChars("a b"))
	assert.False(t, validator.HasSpecialChars("abc§"))
	assert.True(t, validator.HasSpecialChars("abc§", '§'))
	assert.False(t, validator.HasSpecialChars(""))
}

func TestContainsOnlyAndNone(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ContainsOnly("abba", 'a', 'b'))
	assert.False(t, validator.ContainsOnly("abc", 'a', 'b'))
	assert.False(t, validator.ContainsOnly("", 'a'))
	assert.False(t, validator.ContainsOnly("a"))

	assert.True(t, validator.ContainsNone("hello", 'x', 'y'))
	assert.False(t, validator.ContainsNone("hex", 'x'))
	assert.False(t, validator.ContainsNone("", 'x'))
	assert.True(t, validator.ContainsNone("abc"))
}
