// Package textgen generates random text and applies deterministic text
// transforms.
//
// Random output comes from a Generator, which samples uniformly with
// replacement from fixed alphabets and a small lorem ipsum corpus:
//
//	g := textgen.New(textgen.WithSource(random.NewSeeded(42)))
//	g.RandomString(16)  // 16 ASCII letters and digits
//	g.Sentence()        // "Lorem dolor ut magna." style, 4-12 words
//	g.Email()           // "k3j9x2a@qw8rt.com"
//
// Package-level Generate* functions use a generator on random.Default, which
// is safe for concurrent use. Non-positive lengths and counts produce empty
// output rather than errors.
//
// Reverse, Slugify, ToTitleCase and WrapText are pure functions of their input.
// WrapText returns an iter.Seq so callers can stop early:
//
//	for line := range textgen.WrapText(text, 72) {
//	    fmt.Println(line)
//	}
package textgen
