package textgen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/stryng/pkg/random"
)

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Nil sources are ignored.
func WithSource(src random.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithSymbols replaces the special characters used by RandomPassword.
func WithSymbols(symbols string) Option {
	return func(g *Generator) {
		g.symbols = symbols
	}
}

// Generator produces random text. It is safe for concurrent use as long as
// its Source is.
type Generator struct {
	src     random.Source
	symbols string
}

// New returns a Generator on random.Default unless WithSource is given.
func New(opts ...Option) *Generator {
	g := &Generator{
		src:     random.Default(),
		symbols: PasswordSymbol,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RandomString returns length random ASCII letters and digits.
func (g *Generator) RandomString(length int) string {
	return random.String(g.src, length, AlphaNumeric)
}

// RandomAlpha returns length random ASCII letters.
func (g *Generator) RandomAlpha(length int) string {
	return random.String(g.src, length, Letters)
}

// RandomAlphaNumeric is RandomString.
func (g *Generator) RandomAlphaNumeric(length int) string {
	return g.RandomString(length)
}

// RandomPassword returns length random letters and digits, plus the
// generator's symbols when includeSpecial is set. It does not guarantee that
// every class is present.
func (g *Generator) RandomPassword(length int, includeSpecial bool) string {
	alphabet := AlphaNumeric
	if includeSpecial {
		alphabet += g.symbols
	}
	return random.String(g.src, length, alphabet)
}

// LoremIpsum returns words lorem ipsum words separated by single spaces.
func (g *Generator) LoremIpsum(words int) string {
	if words <= 0 {
		return ""
	}
	out := make([]string, words)
	for i := range out {
		out[i] = loremWords[random.Intn(g.src, len(loremWords))]
	}
	return strings.Join(out, " ")
}

// Sentence returns a capitalised sentence of 4 to 12 words ending in a period.
func (g *Generator) Sentence() string {
	return g.SentenceRange(DefaultMinSentenceWords, DefaultMaxSentenceWords)
}

// SentenceRange returns a sentence with a word count drawn from [minWords, maxWords].
// It returns "" when the drawn count is not positive.
func (g *Generator) SentenceRange(minWords, maxWords int) string {
	text := g.LoremIpsum(random.IntRange(g.src, minWords, maxWords))
	if text == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:] + "."
}

// Paragraph returns sentences default-length sentences joined by single spaces.
func (g *Generator) Paragraph(sentences int) string {
	if sentences <= 0 {
		return ""
	}
	out := make([]string, sentences)
	for i := range out {
		out[i] = g.Sentence()
	}
	return strings.Join(out, " ")
}

// Email returns a fake address of the form user@domain.com with a 6-12
// character user and a 5-8 character domain, both lowercase alphanumeric.
func (g *Generator) Email() string {
	user := random.String(g.src, random.IntRange(g.src, 6, 12), LowerAlnum)
	domain := random.String(g.src, random.IntRange(g.src, 5, 8), LowerAlnum)
	return user + "@" + domain + ".com"
}

// PhoneNumber returns ten random digits, prefixed with "+countryCode" when
// countryCode is not blank.
func (g *Generator) PhoneNumber(countryCode string) string {
	number := random.String(g.src, phoneDigits, digits)
	if strings.TrimSpace(countryCode) == "" {
		return number
	}
	return "+" + countryCode + number
}
