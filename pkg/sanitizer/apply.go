package sanitizer

import "strings"

// Apply runs value through transforms in order. Nil transforms are skipped.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		if transform != nil {
			value = transform(value)
		}
	}
	return value
}

// Compose returns a reusable pipeline equivalent to calling Apply with transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	transforms = append([]func(T) T(nil), transforms...)
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// PerLine lifts a string transform so it runs on each line separately.
// "\n" and "\r\n" line breaks are kept as they were.
//
//	sanitizer.PerLine(sanitizer.NormalizeWhitespace)("a   b\n  c ") // "a b\nc"
func PerLine(transform func(string) string) func(string) string {
	if transform == nil {
		return func(s string) string { return s }
	}
	return func(s string) string {
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			if trimmed, ok := strings.CutSuffix(line, "\r"); ok {
				lines[i] = transform(trimmed) + "\r"
				continue
			}
			lines[i] = transform(line)
		}
		return strings.Join(lines, "\n")
	}
}
