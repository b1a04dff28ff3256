package analyzer

import (
	"github.com/cloudflare/ahocorasick"
)

// audioGuideTerms are the fixed keyword patterns that mark a post as
// referencing an audio guide. Matched case-insensitively on word
// boundaries.
var audioGuideTerms = []string{
	"audio guide",
	"audio guides",
	"audioguide",
	"audioguides",
	"audio tour",
	"audio tours",
	"audio commentary",
	"guided tour",
	"audio device",
	"audio app",
	"audio recording",
	"audio explanation",
	"audio description",
	"headphones",
	"headset",
	"acoustiguide",
}

// MentionDetector reports whether a text references an audio guide. It is
// a pure predicate: build once, share freely across workers.
type MentionDetector struct {
	matcher *ahocorasick.Matcher
}

// NewMentionDetector builds the keyword automaton. Terms are padded with
// spaces and matched against space-padded normalized text, which gives
// word-boundary semantics with a single pass over the input.
func NewMentionDetector() *MentionDetector {
	padded := make([]string, len(audioGuideTerms))
	for i, term := range audioGuideTerms {
		padded[i] = " " + term + " "
	}
	return &MentionDetector{matcher: ahocorasick.NewStringMatcher(padded)}
}

// Mentions returns true iff the text contains any audio-guide term.
// False on empty text.
func (d *MentionDetector) Mentions(text string) bool {
	normalized := normalizeText(text)
	if normalized == "" {
		return false
	}
	hits := d.matcher.Match([]byte(" " + normalized + " "))
	return len(hits) > 0
}
