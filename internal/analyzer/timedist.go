package analyzer

import (
	"regexp"
	"strconv"

	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
)

// TimeBucketer buckets posts by posting year. Forum timestamps are free
// text: either something containing a four-digit year, or a relative form
// like "3 years ago". Relative forms are resolved against a fixed
// reference year so regenerated output is reproducible.
type TimeBucketer struct {
	referenceYear int
}

// DefaultReferenceYear anchors relative dates in the scraped corpus.
const DefaultReferenceYear = 2024

var (
	yearPattern     = regexp.MustCompile(`\b(\d{4})\b`)
	yearsAgoPattern = regexp.MustCompile(`(\d+)\s+years?\s+ago`)
)

// NewTimeBucketer creates a time bucketer.
func NewTimeBucketer(referenceYear int) *TimeBucketer {
	if referenceYear == 0 {
		referenceYear = DefaultReferenceYear
	}
	return &TimeBucketer{referenceYear: referenceYear}
}

// Bucket returns year -> post count for one museum's top-level posts.
// Posts with no recognizable date are omitted.
func (t *TimeBucketer) Bucket(posts []domain.Post) map[string]int {
	dist := make(map[string]int)

	for i := range posts {
		if year, ok := t.year(posts[i].Time); ok {
			dist[year]++
		}
	}

	return dist
}

func (t *TimeBucketer) year(timeStr string) (string, bool) {
	if timeStr == "" {
		return "", false
	}

	if m := yearPattern.FindStringSubmatch(timeStr); m != nil {
		return m[1], true
	}

	if m := yearsAgoPattern.FindStringSubmatch(timeStr); m != nil {
		yearsAgo, err := strconv.Atoi(m[1])
		if err != nil {
			return "", false
		}
		return strconv.Itoa(t.referenceYear - yearsAgo), true
	}

	return "", false
}
