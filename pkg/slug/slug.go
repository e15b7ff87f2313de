package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/stryng/pkg/random"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	lowercase     bool
	stripChars    string
	customReplace map[string]string
	suffixLength  int
	src           random.Source
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		lowercase: true,
		src:       random.Default(),
	}
}

// MaxLength sets the maximum length of the slug in code points, suffix included.
// Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string that replaces white space runs. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Lowercase controls whether the slug is lowercased. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

// StripChars removes the given characters before slugification.
func StripChars(chars string) Option {
	return func(c *config) {
		c.stripChars = chars
	}
}

// CustomReplace applies string replacements before slugification,
// e.g. {"&": " and "}.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// WithSuffix appends a random alphanumeric suffix of the given length.
func WithSuffix(length int) Option {
	return func(c *config) {
		c.suffixLength = length
	}
}

// WithSource sets the random source used for suffixes.
func WithSource(src random.Source) Option {
	return func(c *config) {
		if src != nil {
			c.src = src
		}
	}
}

// stripMarks decomposes, drops combining marks (é → e) and recomposes.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Make creates a URL-safe slug from s.
//
// Diacritics are removed by Unicode decomposition, white space runs become a
// single separator, and every other character outside [A-Za-z0-9] is dropped.
// Leading and trailing separators never appear. Blank input yields "".
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}
	for _, char := range cfg.stripChars {
		s = strings.ReplaceAll(s, string(char), "")
	}

	limit := cfg.maxLength
	if limit > 0 && cfg.suffixLength > 0 {
		limit -= cfg.suffixLength + utf8.RuneCountInString(cfg.separator)
	}
	if cfg.maxLength > 0 && limit <= 0 {
		return suffixOnly(cfg)
	}

	var b strings.Builder
	b.Grow(len(s))

	sepLen := utf8.RuneCountInString(cfg.separator)
	pendingSep := false
	runeCount := 0

	for _, r := range stripMarks(s) {
		if unicode.IsSpace(r) {
			pendingSep = runeCount > 0
			continue
		}
		if !isASCIIAlnum(r) {
			continue
		}

		need := 1
		if pendingSep {
			need += sepLen
		}
		if limit > 0 && runeCount+need > limit {
			break
		}
		if pendingSep {
			b.WriteString(cfg.separator)
			pendingSep = false
		}
		if cfg.lowercase {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		runeCount += need
	}

	result := b.String()
	if cfg.suffixLength <= 0 {
		return result
	}
	if result == "" {
		return suffixOnly(cfg)
	}
	return result + cfg.separator + suffix(cfg, cfg.suffixLength)
}

func suffixOnly(cfg *config) string {
	n := cfg.suffixLength
	if cfg.maxLength > 0 && n > cfg.maxLength {
		n = cfg.maxLength
	}
	return suffix(cfg, n)
}

func suffix(cfg *config, n int) string {
	const lower = "abcdefghijklmnopqrstuvwxyz0123456789"
	const mixed = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	charset := lower
	if !cfg.lowercase {
		charset = mixed
	}
	return random.String(cfg.src, n, charset)
}
