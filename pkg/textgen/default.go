package textgen

var std = New()

// GenerateRandomString returns length random ASCII letters and digits.
func GenerateRandomString(length int) string { return std.RandomString(length) }

// GenerateRandomAlpha returns length random ASCII letters.
func GenerateRandomAlpha(length int) string { return std.RandomAlpha(length) }

func GenerateRandomAlphaNumeric(length int) string { return std.RandomAlphaNumeric(length) }

func GenerateRandomPassword(length int, includeSpecial bool) string {
	return std.RandomPassword(length, includeSpecial)
}

func GenerateLoremIpsum(words int) string { return std.LoremIpsum(words) }

// GenerateRandomSentence returns a sentence of 4 to 12 words.
func GenerateRandomSentence() string { return std.Sentence() }

func GenerateRandomParagraph(sentences int) string { return std.Paragraph(sentences) }

func GenerateRandomEmail() string { return std.Email() }

func GenerateRandomPhoneNumber(countryCode string) string { return std.PhoneNumber(countryCode) }
