package textgen

// loremWords is the sampling corpus for LoremIpsum. Duplicates are intentional:
// "ut" is drawn three times as often as the other words.
var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit", "sed", "do",
	"eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore", "magna", "aliqua", "ut",
	"enim", "ad", "minim", "veniam", "quis", "nostrud", "exercitation", "ullamco", "laboris",
	"nisi", "ut", "aliquip", "ex", "ea", "commodo", "consequat",
}

// Alphabets used by the random string family.
const (
	upperLetters   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerLetters   = "abcdefghijklmnopqrstuvwxyz"
	digits         = "0123456789"
	Letters        = upperLetters + lowerLetters
	AlphaNumeric   = Letters + digits
	LowerAlnum     = lowerLetters + digits
	PasswordSymbol = "!@#$%^&*()-_=+[]{}|;:'\",.<>?/`~"
)

const (
	// DefaultMinSentenceWords and DefaultMaxSentenceWords bound Sentence.
	DefaultMinSentenceWords = 4
	DefaultMaxSentenceWords = 12

	// DefaultParagraphSentences is the sentence count used by Paragraph callers that have no preference.
	DefaultParagraphSentences = 3

	phoneDigits = 10
)
