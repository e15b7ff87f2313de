package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/stryng/pkg/validator"
)

func TestContainsAnyAll(t *testing.T) {
	t.Parallel()

	t.Run("any", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.ContainsAny("hello world", "xyz", "wor"))
		assert.False(t, validator.ContainsAny("hello world", "xyz", "WOR"))
		assert.False(t, validator.ContainsAny("hello"))
	})

	t.Run("all", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.ContainsAll("hello world", "hello", "world"))
		assert.False(t, validator.ContainsAll("hello world", "hello", "there"))
		assert.True(t, validator.ContainsAll("hello"))
	})

	t.Run("empty input is never a match", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.ContainsAny("", ""))
		assert.False(t, validator.ContainsAll("", ""))
		assert.False(t, validator.ContainsAll(""))
		assert.False(t, validator.StartsWithAny("", ""))
		assert.False(t, validator.EndsWithAny("", ""))
	})
}

func TestStartsEndsWithAny(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.StartsWithAny("Hello", "xx", "he"))
	assert.False(t, validator.StartsWithAny("Hello", "lo"))
	assert.True(t, validator.EndsWithAny("report.TXT", ".pdf", ".txt"))
	assert.False(t, validator.EndsWithAny("report.txt", ".doc"))
	assert.False(t, validator.StartsWithAny("Hello"))

	assert.True(t, validator.StartsWithAnyIn("İstanbul", language.Turkish, "istan"))
	assert.True(t, validator.EndsWithAnyIn("KAPI", language.Turkish, "pı"))
}

func TestStartsWithAnyEveryPrefix(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"a", "Hello, World", "Straße", "日本語テキスト", "MiXeD cAsE 123"} {
		runes := []rune(s)
		for i := 0; i <= len(runes); i++ {
			prefix := string(runes[:i])
			assert.True(t, validator.StartsWithAny(s, prefix), "StartsWithAny(%q, %q)", s, prefix)
			suffix := string(runes[i:])
			assert.True(t, validator.EndsWithAny(s, suffix), "EndsWithAny(%q, %q)", s, suffix)
		}
	}
}

func TestStartsWithAnyInEveryPrefix(t *testing.T) {
	t.Parallel()

	tags := []language.Tag{language.Und, language.Greek, language.Turkish, language.German}
	inputs := []string{"ΑΣΑ", "ΣΟΣ", "ΟΔΥΣΣΕΥΣ", "İSTANBUL", "Straße", "MiXeD cAsE 123"}
	for _, tag := range tags {
		for _, s := range inputs {
			runes := []rune(s)
			for i := 0; i <= len(runes); i++ {
				prefix := string(runes[:i])
				assert.True(t, validator.StartsWithAnyIn(s, tag, prefix), "StartsWithAnyIn(%q, %v, %q)", s, tag, prefix)
				suffix := string(runes[i:])
				assert.True(t, validator.EndsWithAnyIn(s, tag, suffix), "EndsWithAnyIn(%q, %v, %q)", s, tag, suffix)
			}
		}
	}

	t.Run("greek sigma", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.StartsWithAnyIn("ΑΣΑ", language.Und, "ΑΣ"))
		assert.True(t, validator.StartsWithAnyIn("ΑΣΑ", language.Greek, "ασ"))
		assert.True(t, validator.EndsWithAnyIn("ΣΟΣ", language.Greek, "Σ"))
		assert.False(t, validator.EndsWithAnyIn("ΣΟΣ", language.Greek, "α"))
	})
}

func TestMatchesRegex(t *testing.T) {
	t.Parallel()

	t.Run("match", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.MatchesRegex("order-123", `\d+`)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.MatchesRegex("order", `^\d+$`)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		ok, err := validator.MatchesRegex("", `.*`)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalid pattern is an error", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"abc", ""} {
			ok, err := validator.MatchesRegex(in, "(")
			require.Error(t, err)
			assert.False(t, ok)
			assert.ErrorIs(t, err, validator.ErrInvalidPattern)

			var perr *validator.PatternError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "(", perr.Pattern)
			assert.NotNil(t, errors.Unwrap(perr))
		}
	})

	t.Run("cached pattern gives same result", func(t *testing.T) {
		t.Parallel()
		for range 3 {
			ok, err := validator.MatchesRegex("ABC", `^[A-Z]{3}$`)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})
}
