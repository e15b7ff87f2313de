package textgen

import (
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Reverse returns s with its code points in reverse order.
func Reverse(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	slices.Reverse(runes)
	return string(runes)
}

// slugKeep decomposes s, keeps only letters, digits and plain spaces
// (combining marks fall out here), then recomposes.
var slugKeep = transform.Chain(
	norm.NFD,
	runes.Remove(runes.Predicate(func(r rune) bool {
		return r != ' ' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})),
	norm.NFC,
)

// Slugify converts s into a lowercase, hyphen-separated, URL-safe token.
//
// Diacritics are removed, each run of spaces becomes one hyphen, and only
// then is everything outside [a-z0-9-] dropped. Edges are not trimmed, so
// " Hello " gives "-hello-" and "a ж b" gives "a--b". Use slug.Make for
// trimmed, length-limited slugs. Blank input yields "".
func Slugify(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	kept, _, err := transform.String(slugKeep, s)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.Grow(len(kept))
	inSpace := false
	for _, r := range kept {
		if r == ' ' {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + 'a' - 'A')
		}
	}
	return b.String()
}

// ToTitleCase lowercases s and capitalises the first letter of each word
// using invariant rules. Blank input yields "".
func ToTitleCase(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	lower := cases.Lower(language.Und).String(s)
	return cases.Title(language.Und).String(lower)
}

func isWrapSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// WrapText greedily fills lines of at most maxLineLength code points.
//
// A word is appended (with a trailing space) unless the current line plus the
// word plus one space would exceed maxLineLength, in which case the current
// line is emitted first. Words are never split, so a word longer than
// maxLineLength forms its own line. Blank input or a non-positive width yields
// no lines. The sequence can be ranged over any number of times.
func WrapText(s string, maxLineLength int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if strings.TrimSpace(s) == "" || maxLineLength <= 0 {
			return
		}

		var line strings.Builder
		lineLen := 0
		for _, word := range strings.FieldsFunc(s, isWrapSeparator) {
			wordLen := utf8.RuneCountInString(word)
			if lineLen+wordLen+1 > maxLineLength && lineLen > 0 {
				if !yield(strings.TrimRight(line.String(), " ")) {
					return
				}
				line.Reset()
				lineLen = 0
			}
			line.WriteString(word)
			line.WriteByte(' ')
			lineLen += wordLen + 1
		}

		if lineLen > 0 {
			yield(strings.TrimRight(line.String(), " "))
		}
	}
}
