package analyzer

// lexiconVersion identifies the polarity tables below. Bump it whenever a
// weight or term changes so regenerated output can be traced to the
// lexicon that produced it.
const lexiconVersion = "2024.1"

// positiveTerms maps polarity-bearing tokens (and a few bigrams) to
// weights in (0, 1]. Bigrams are matched before unigrams.
var positiveTerms = map[string]float64{
	"excellent":     1.0,
	"amazing":       1.0,
	"fantastic":     1.0,
	"perfect":       1.0,
	"wonderful":     1.0,
	"outstanding":   1.0,
	"superb":        1.0,
	"brilliant":     1.0,
	"great":         0.9,
	"love":          0.8,
	"loved":         0.8,
	"impressive":    0.8,
	"helpful":       0.8,
	"recommended":   0.8,
	"recommend":     0.8,
	"best":          0.8,
	"worth it":      0.8,
	"useful":        0.7,
	"essential":     0.7,
	"enjoy":         0.7,
	"enjoyed":       0.7,
	"informative":   0.7,
	"insightful":    0.7,
	"well made":     0.7,
	"good":          0.6,
	"worth":         0.6,
	"educational":   0.6,
	"convenient":    0.6,
	"professional":  0.6,
	"comprehensive": 0.6,
	"clear":         0.5,
	"easy":          0.5,
	"detailed":      0.5,
	"nice":          0.5,
	"thank":         0.4,
	"thanks":        0.4,
	"better":        0.4,
}

// negativeTerms carries negative weights in [-1, 0).
var negativeTerms = map[string]float64{
	"terrible":      -1.0,
	"awful":         -1.0,
	"horrible":      -1.0,
	"dreadful":      -1.0,
	"scam":          -1.0,
	"useless":       -0.9,
	"rip off":       -0.9,
	"trash":         -0.9,
	"garbage":       -0.9,
	"disaster":      -0.9,
	"nightmare":     -0.9,
	"not working":   -0.9,
	"waste":         -0.8,
	"disappointing": -0.8,
	"frustrating":   -0.8,
	"broken":        -0.8,
	"overpriced":    -0.8,
	"rubbish":       -0.8,
	"miserable":     -0.8,
	"bad":           -0.7,
	"poor":          -0.7,
	"annoying":      -0.7,
	"inadequate":    -0.7,
	"confusing":     -0.6,
	"missing":       -0.6,
	"outdated":      -0.6,
	"complicated":   -0.5,
	"difficult":     -0.5,
	"weak":          -0.5,
	"expensive":     -0.5,
	"problem":       -0.5,
	"trouble":       -0.5,
	"hard":          -0.4,
	"limited":       -0.4,
	"issue":         -0.4,
}

// negationTokens flip the sign of a polarity token appearing within the
// negation window after them. Contraction stems appear because tokenizing
// strips apostrophes ("wasn't" -> "wasn", "t").
var negationTokens = map[string]struct{}{
	"not":      {},
	"no":       {},
	"never":    {},
	"none":     {},
	"nobody":   {},
	"nothing":  {},
	"neither":  {},
	"nor":      {},
	"hardly":   {},
	"barely":   {},
	"without":  {},
	"dont":     {},
	"don":      {},
	"didn":     {},
	"doesn":    {},
	"isn":      {},
	"wasn":     {},
	"aren":     {},
	"weren":    {},
	"couldn":   {},
	"wouldn":   {},
	"shouldn":  {},
	"cannot":   {},
}
