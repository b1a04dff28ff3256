package analyzer

import (
	"sort"

	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
)

// ThemeExtractor surfaces recurring topical n-grams (unigrams and
// bigrams) from one museum's posts. Extraction is idempotent: rerunning
// on the same post set yields the same ordered list.
type ThemeExtractor struct {
	minFrequency int
	topK         int
}

// Default theme extraction settings.
const (
	DefaultThemeMinFrequency = 2
	DefaultThemeTopK         = 10
)

// NewThemeExtractor creates a theme extractor.
func NewThemeExtractor(minFrequency, topK int) *ThemeExtractor {
	if minFrequency < 1 {
		minFrequency = DefaultThemeMinFrequency
	}
	if topK < 1 {
		topK = DefaultThemeTopK
	}
	return &ThemeExtractor{minFrequency: minFrequency, topK: topK}
}

type themeCandidate struct {
	ngram     string
	count     int
	firstSeen int
}

// Extract returns the museum's themes, most frequent first, deduplicated
// and capped at top-K. Ties are broken by first-seen order so the result
// is stable across reruns.
func (t *ThemeExtractor) Extract(posts []domain.Post) []string {
	counts := make(map[string]*themeCandidate)
	seen := 0

	record := func(ngram string) {
		c, ok := counts[ngram]
		if !ok {
			c = &themeCandidate{ngram: ngram, firstSeen: seen}
			counts[ngram] = c
			seen++
		}
		c.count++
	}

	collect := func(text string) {
		tokens := tokenize(text)
		for i, tok := range tokens {
			if !isThemeToken(tok) {
				continue
			}
			record(tok)
			if i+1 < len(tokens) && isThemeToken(tokens[i+1]) {
				record(tok + " " + tokens[i+1])
			}
		}
	}

	for i := range posts {
		collect(posts[i].Title + " " + posts[i].Content)
		for j := range posts[i].Replies {
			collect(posts[i].Replies[j].Content)
		}
	}

	candidates := make([]*themeCandidate, 0, len(counts))
	for _, c := range counts {
		if c.count >= t.minFrequency {
			candidates = append(candidates, c)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].firstSeen < candidates[j].firstSeen
	})

	if len(candidates) > t.topK {
		candidates = candidates[:t.topK]
	}

	themes := make([]string, len(candidates))
	for i, c := range candidates {
		themes[i] = c.ngram
	}
	return themes
}
