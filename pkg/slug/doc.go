// Package slug converts arbitrary text into URL-safe slugs.
//
// Make decomposes the input (Unicode NFD), drops combining marks so that
// "Café" becomes "Cafe", keeps ASCII letters and digits, turns every run of
// white space into a single separator and discards everything else:
//
//	slug.Make("Hello World!")       // "hello-world"
//	slug.Make("Crème brûlée")       // "creme-brulee"
//	slug.Make("Price: $99.99")      // "price-9999"
//
// Letters without an ASCII decomposition (ß, ø, CJK) are dropped.
//
// # Options
//
//   - MaxLength: limit the slug length in code points, suffix included
//   - Separator: replace "-" with another string
//   - Lowercase: disable lowercasing (enabled by default)
//   - StripChars / CustomReplace: pre-process the input
//   - WithSuffix / WithSource: append a random alphanumeric suffix
//
// All functions are safe for concurrent use.
package slug
