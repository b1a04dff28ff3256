package analyzer

import (
	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
)

// SentimentScorer assigns a sentiment label and score in [-1, 1] to a
// text. Implementations must be deterministic: identical input always
// yields identical output. The lexicon scorer below is the default; a
// learned model can be swapped in without touching aggregation code.
type SentimentScorer interface {
	Score(text string) (domain.Sentiment, float64)
}

// ScorerConfig holds lexicon scorer settings.
type ScorerConfig struct {
	// PositiveThreshold and NegativeThreshold are the symmetric label
	// boundaries on the normalized score.
	PositiveThreshold float64
	NegativeThreshold float64
	// NegationWindow is how many tokens before a polarity token a
	// negation token still flips its sign.
	NegationWindow int
}

// Default scorer settings.
const (
	DefaultPositiveThreshold = 0.15
	DefaultNegativeThreshold = -0.15
	DefaultNegationWindow    = 3
)

// LexiconScorer scores text against fixed positive/negative term tables
// with simple negation handling. No randomness, no external calls.
type LexiconScorer struct {
	cfg ScorerConfig
}

// NewLexiconScorer creates a lexicon-based sentiment scorer.
func NewLexiconScorer(cfg ScorerConfig) *LexiconScorer {
	if cfg.PositiveThreshold == 0 {
		cfg.PositiveThreshold = DefaultPositiveThreshold
	}
	if cfg.NegativeThreshold == 0 {
		cfg.NegativeThreshold = DefaultNegativeThreshold
	}
	if cfg.NegationWindow == 0 {
		cfg.NegationWindow = DefaultNegationWindow
	}
	return &LexiconScorer{cfg: cfg}
}

// LexiconVersion reports which polarity table revision this scorer uses.
func (s *LexiconScorer) LexiconVersion() string {
	return lexiconVersion
}

// Score tokenizes the text, sums signed polarity weights (bigram entries
// matched before unigrams), flips signs for negated tokens, and
// normalizes by the number of polarity-bearing matches so long posts do
// not grow unbounded scores. Empty input yields (neutral, 0.0).
func (s *LexiconScorer) Score(text string) (domain.Sentiment, float64) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return domain.SentimentNeutral, 0.0
	}

	var sum float64
	matches := 0

	for i := 0; i < len(tokens); i++ {
		weight, width, ok := lookupPolarity(tokens, i)
		if !ok {
			continue
		}
		if s.negatedAt(tokens, i) {
			weight = -weight
		}
		sum += weight
		matches++
		i += width - 1
	}

	if matches == 0 {
		return domain.SentimentNeutral, 0.0
	}

	score := sum / float64(matches)
	score = clamp(score, -1.0, 1.0)

	return s.label(score), score
}

// lookupPolarity finds a lexicon entry starting at tokens[i]. Returns the
// weight and how many tokens the entry consumed.
func lookupPolarity(tokens []string, i int) (weight float64, width int, ok bool) {
	if i+1 < len(tokens) {
		bigram := tokens[i] + " " + tokens[i+1]
		if w, found := positiveTerms[bigram]; found {
			return w, 2, true
		}
		if w, found := negativeTerms[bigram]; found {
			return w, 2, true
		}
	}

	if w, found := positiveTerms[tokens[i]]; found {
		return w, 1, true
	}
	if w, found := negativeTerms[tokens[i]]; found {
		return w, 1, true
	}
	return 0, 0, false
}

// negatedAt reports whether a negation token appears within the window
// before position i.
func (s *LexiconScorer) negatedAt(tokens []string, i int) bool {
	start := i - s.cfg.NegationWindow
	if start < 0 {
		start = 0
	}
	for j := start; j < i; j++ {
		if _, ok := negationTokens[tokens[j]]; ok {
			return true
		}
	}
	return false
}

func (s *LexiconScorer) label(score float64) domain.Sentiment {
	switch {
	case score > s.cfg.PositiveThreshold:
		return domain.SentimentPositive
	case score < s.cfg.NegativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
