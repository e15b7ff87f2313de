// Package sanitizer cleans and reshapes free-form text.
//
// Naming helpers split text into words at punctuation, white space and case
// boundaries and rejoin them as kebab-case, snake_case, camelCase or
// PascalCase. Cleanup helpers normalise white space, strip HTML and terminal
// control sequences, truncate by rune count and mask sensitive values.
//
// Apply and Compose chain any of these into pipelines:
//
//	clean := sanitizer.Compose(sanitizer.StripHTML, sanitizer.NormalizeWhitespace)
//	title := clean("<b>Quarterly</b>\n  report")
package sanitizer
