package validator

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContainsAny reports whether s contains at least one of substrs (case-sensitive).
func ContainsAny(s string, substrs ...string) bool {
	if s == "" {
		return false
	}
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether s contains every one of substrs (case-sensitive).
func ContainsAll(s string, substrs ...string) bool {
	if s == "" {
		return false
	}
	for _, sub := range substrs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

// StartsWithAny reports whether s starts with one of prefixes, ignoring case under invariant rules.
func StartsWithAny(s string, prefixes ...string) bool {
	return matchAffix(s, cases.Fold(), strings.HasPrefix, prefixes)
}

// StartsWithAnyIn is StartsWithAny with the case rules of tag.
func StartsWithAnyIn(s string, tag language.Tag, prefixes ...string) bool {
	return matchAffix(s, affixLower(tag), strings.HasPrefix, prefixes)
}

// EndsWithAny reports whether s ends with one of suffixes, ignoring case under invariant rules.
func EndsWithAny(s string, suffixes ...string) bool {
	return matchAffix(s, cases.Fold(), strings.HasSuffix, suffixes)
}

// EndsWithAnyIn is EndsWithAny with the case rules of tag.
func EndsWithAnyIn(s string, tag language.Tag, suffixes ...string) bool {
	return matchAffix(s, affixLower(tag), strings.HasSuffix, suffixes)
}

// affixLower lowers without final-sigma handling so that lowering a prefix
// or suffix on its own yields the same runes as lowering it in place.
func affixLower(tag language.Tag) cases.Caser {
	return cases.Lower(tag, cases.HandleFinalSigma(false))
}

func matchAffix(s string, c cases.Caser, match func(string, string) bool, affixes []string) bool {
	if s == "" {
		return false
	}
	folded := c.String(s)
	for _, a := range affixes {
		if match(folded, c.String(a)) {
			return true
		}
	}
	return false
}

// MatchesRegex reports whether s contains a match of pattern (RE2 syntax).
// A pattern that fails to compile returns a *PatternError, even for empty s.
func MatchesRegex(s, pattern string) (bool, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return false, err
	}
	if s == "" {
		return false, nil
	}
	return re.MatchString(s), nil
}

// maxCachedPatterns bounds the pattern cache; patterns past the limit are compiled per call.
const maxCachedPatterns = 256

var patternCache = struct {
	sync.RWMutex
	m map[string]*regexp.Regexp
}{m: make(map[string]*regexp.Regexp)}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	patternCache.RLock()
	re, ok := patternCache.m[pattern]
	patternCache.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	patternCache.Lock()
	if len(patternCache.m) < maxCachedPatterns {
		patternCache.m[pattern] = re
	}
	patternCache.Unlock()

	return re, nil
}
