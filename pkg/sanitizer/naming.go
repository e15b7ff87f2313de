package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words splits s into words at non-alphanumeric runes and at case
// boundaries, so "parseHTTPResponse_v2" yields [parse HTTP Response v2].
func Words(s string) []string {
	var words []string
	runes := []rune(s)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush(i)
			start = i
		case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}

// ToKebabCase lowercases the words of s and joins them with '-'.
func ToKebabCase(s string) string {
	return joinLower(Words(s), "-")
}

// ToSnakeCase lowercases the words of s and joins them with '_'.
func ToSnakeCase(s string) string {
	return joinLower(Words(s), "_")
}

// ToCamelCase joins the words of s with the first lowercased and the rest capitalised.
func ToCamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	return strings.ToLower(words[0]) + ToPascalCase(strings.Join(words[1:], " "))
}

// ToPascalCase joins the words of s, each capitalised.
func ToPascalCase(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(strings.ToLower(w[size:]))
	}
	return b.String()
}

func joinLower(words []string, sep string) string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}
