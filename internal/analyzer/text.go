package analyzer

import (
	"strings"
	"unicode"
)

// tokenize lowercases text and splits it into alphanumeric tokens.
// Punctuation and other symbols act as token boundaries, which preserves
// word boundaries for keyword matching ("audio-guide" -> "audio",
// "guide").
func tokenize(text string) []string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	return strings.Fields(b.String())
}

// normalizeText rebuilds text as single-space separated tokens.
func normalizeText(text string) string {
	return strings.Join(tokenize(text), " ")
}
