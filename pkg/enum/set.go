package enum

import (
	"fmt"
	"strconv"
	"strings"
)

// Variant describes one enum value and its human-readable metadata.
type Variant[T Integer] struct {
	Value       T
	Name        string
	Description string
	DisplayName string
}

// Set is an immutable lookup table over the variants of an enum type.
// It is built once, usually in a package-level var, and is safe for
// concurrent use.
type Set[T Integer] struct {
	variants []Variant[T]
	byValue  map[T]int
	byName   map[string]int
	byFold   map[string]int
	flags    bool
}

// New builds a Set. It panics on an empty or duplicate name or a duplicate
// value, since those are definition errors.
func New[T Integer](variants ...Variant[T]) *Set[T] {
	s := &Set[T]{
		variants: make([]Variant[T], len(variants)),
		byValue:  make(map[T]int, len(variants)),
		byName:   make(map[string]int, len(variants)),
		byFold:   make(map[string]int, len(variants)),
	}
	copy(s.variants, variants)

	for i, v := range s.variants {
		if v.Name == "" {
			panic(fmt.Sprintf("enum: variant with value %d has no name", v.Value))
		}
		if _, ok := s.byName[v.Name]; ok {
			panic(fmt.Sprintf("enum: duplicate variant name %q", v.Name))
		}
		if _, ok := s.byValue[v.Value]; ok {
			panic(fmt.Sprintf("enum: duplicate variant value %d", v.Value))
		}
		s.byName[v.Name] = i
		s.byValue[v.Value] = i
		// First name wins when two names differ only by case.
		if _, ok := s.byFold[strings.ToLower(v.Name)]; !ok {
			s.byFold[strings.ToLower(v.Name)] = i
		}
	}
	return s
}

// NewFlags builds a Set whose values are bit flags. Parse additionally
// accepts comma-separated names, OR-ing their values together.
func NewFlags[T Integer](variants ...Variant[T]) *Set[T] {
	s := New(variants...)
	s.flags = true
	return s
}

// Parse converts s to a value. s may be a variant name, a decimal integer,
// or for flag sets a comma-separated list of names. Blank input returns
// ErrEmptyValue; anything else that does not resolve returns ErrUnknownName.
func (s *Set[T]) Parse(str string, ignoreCase bool) (T, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return 0, ErrEmptyValue
	}

	if s.flags && strings.Contains(str, ",") {
		var out T
		for part := range strings.SplitSeq(str, ",") {
			v, err := s.parseOne(strings.TrimSpace(part), ignoreCase)
			if err != nil {
				return 0, err
			}
			out |= v
		}
		return out, nil
	}

	return s.parseOne(str, ignoreCase)
}

func (s *Set[T]) parseOne(str string, ignoreCase bool) (T, error) {
	if str == "" {
		return 0, ErrEmptyValue
	}
	if i, ok := s.byName[str]; ok {
		return s.variants[i].Value, nil
	}
	if ignoreCase {
		if i, ok := s.byFold[strings.ToLower(str)]; ok {
			return s.variants[i].Value, nil
		}
	}
	if v, ok := parseInteger[T](str); ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownName, str)
}

// TryParse is Parse reporting success as a boolean.
func (s *Set[T]) TryParse(str string, ignoreCase bool) (T, bool) {
	v, err := s.Parse(str, ignoreCase)
	return v, err == nil
}

// ParseOrDefault returns def when str does not parse.
func (s *Set[T]) ParseOrDefault(str string, def T, ignoreCase bool) T {
	if v, ok := s.TryParse(str, ignoreCase); ok {
		return v
	}
	return def
}

// Metadata returns the variant registered for v.
func (s *Set[T]) Metadata(v T) (Variant[T], bool) {
	i, ok := s.byValue[v]
	if !ok {
		return Variant[T]{}, false
	}
	return s.variants[i], true
}

// Name returns the variant name of v. Undefined values of flag sets are
// rendered as a comma-separated list of the set bits' names when every bit is
// named; otherwise the decimal value is returned.
func (s *Set[T]) Name(v T) string {
	if m, ok := s.Metadata(v); ok {
		return m.Name
	}
	if s.flags && v != 0 {
		var names []string
		rest := v
		for _, m := range s.variants {
			if m.Value != 0 && HasFlag(v, m.Value) {
				names = append(names, m.Name)
				rest = RemoveFlag(rest, m.Value)
			}
		}
		if rest == 0 && len(names) > 0 {
			return strings.Join(names, ", ")
		}
	}
	return formatInteger(v)
}

// Description returns the description of v, or its name when none is set.
func (s *Set[T]) Description(v T) string {
	if m, ok := s.Metadata(v); ok && m.Description != "" {
		return m.Description
	}
	return s.Name(v)
}

// DisplayName returns the display name of v, falling back to Description.
func (s *Set[T]) DisplayName(v T) string {
	if m, ok := s.Metadata(v); ok && m.DisplayName != "" {
		return m.DisplayName
	}
	return s.Description(v)
}

// Values returns all defined values in definition order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.variants))
	for i, v := range s.variants {
		out[i] = v.Value
	}
	return out
}

// Names returns all variant names in definition order.
func (s *Set[T]) Names() []string {
	out := make([]string, len(s.variants))
	for i, v := range s.variants {
		out[i] = v.Name
	}
	return out
}

// Map returns a fresh map from every value to its Description.
func (s *Set[T]) Map() map[T]string {
	out := make(map[T]string, len(s.variants))
	for _, v := range s.variants {
		out[v.Value] = s.Description(v.Value)
	}
	return out
}

// IsDefined reports whether v is a declared variant.
func (s *Set[T]) IsDefined(v T) bool {
	_, ok := s.byValue[v]
	return ok
}

// parseInteger parses a decimal integer that fits T without truncation.
func parseInteger[T Integer](str string) (T, bool) {
	if n, err := strconv.ParseInt(str, 10, 64); err == nil {
		v := T(n)
		if int64(v) == n && (n < 0) == (v < 0) {
			return v, true
		}
		return 0, false
	}
	if u, err := strconv.ParseUint(str, 10, 64); err == nil {
		v := T(u)
		if v >= 0 && uint64(v) == u {
			return v, true
		}
	}
	return 0, false
}

// formatInteger avoids fmt so a String method defined via the Set cannot recurse.
func formatInteger[T Integer](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}
