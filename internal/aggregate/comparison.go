package aggregate

import (
	"sort"

	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
)

// DefaultRankingLimit caps the comparison ranking lists.
const DefaultRankingLimit = 10

// ComparisonBuilder produces the cross-museum rankings, per-museum deltas
// from the global average, and the global summary. It must run strictly
// after all per-museum metrics are available.
type ComparisonBuilder struct {
	limit int
}

// NewComparisonBuilder creates a comparison builder.
func NewComparisonBuilder(limit int) *ComparisonBuilder {
	if limit < 1 {
		limit = DefaultRankingLimit
	}
	return &ComparisonBuilder{limit: limit}
}

// Build computes the comparison dataset from the full metrics set.
// Ranking ties are broken by museum name in lexicographic order so the
// output ordering is stable across reruns.
func (b *ComparisonBuilder) Build(metrics []domain.MuseumMetrics) domain.MuseumComparison {
	comparison := domain.MuseumComparison{
		TopMuseumsByEngagement: []domain.EngagementRank{},
		TopMuseumsBySentiment:  []domain.SentimentRank{},
		ForumDistribution:      map[string]int{},
		ThemeDistribution:      map[string]int{},
		TimeTrends:             map[string]int{},
	}

	comparison.Summary = b.summarize(metrics)

	avgSentiment := comparison.Summary.AverageSentimentScore
	avgEngagement := 0.0
	if len(metrics) > 0 {
		avgEngagement = float64(comparison.Summary.TotalPosts+comparison.Summary.TotalReplies) / float64(len(metrics))
	}

	comparison.TopMuseumsBySentiment = b.rankBySentiment(metrics, avgSentiment)
	comparison.TopMuseumsByEngagement = b.rankByEngagement(metrics, avgEngagement)

	for i := range metrics {
		m := &metrics[i]
		comparison.ForumDistribution[m.Forum]++
		for _, theme := range m.CommonThemes {
			comparison.ThemeDistribution[theme]++
		}
		for year, count := range m.TimeDistribution {
			comparison.TimeTrends[year] += count
		}
	}

	return comparison
}

func (b *ComparisonBuilder) summarize(metrics []domain.MuseumMetrics) domain.ComparisonSummary {
	summary := domain.ComparisonSummary{TotalMuseums: len(metrics)}

	var sentimentSum float64
	for i := range metrics {
		summary.TotalPosts += metrics[i].TotalPosts
		summary.TotalReplies += metrics[i].TotalReplies
		summary.TotalAudioGuideMentions += metrics[i].AudioGuideMentions
		sentimentSum += metrics[i].AudioGuideSentimentScore
	}
	if len(metrics) > 0 {
		summary.AverageSentimentScore = sentimentSum / float64(len(metrics))
	}

	return summary
}

func (b *ComparisonBuilder) rankBySentiment(metrics []domain.MuseumMetrics, avg float64) []domain.SentimentRank {
	sorted := make([]domain.MuseumMetrics, len(metrics))
	copy(sorted, metrics)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].AudioGuideSentimentScore != sorted[j].AudioGuideSentimentScore {
			return sorted[i].AudioGuideSentimentScore > sorted[j].AudioGuideSentimentScore
		}
		return sorted[i].Museum < sorted[j].Museum
	})

	if len(sorted) > b.limit {
		sorted = sorted[:b.limit]
	}

	ranks := make([]domain.SentimentRank, len(sorted))
	for i := range sorted {
		ranks[i] = domain.SentimentRank{
			Rank:              i + 1,
			Museum:            sorted[i].Museum,
			Forum:             sorted[i].Forum,
			SentimentScore:    sorted[i].AudioGuideSentimentScore,
			PositiveReactions: sorted[i].PositiveReactions,
			NegativeReactions: sorted[i].NegativeReactions,
			DeltaFromAverage:  sorted[i].AudioGuideSentimentScore - avg,
		}
	}
	return ranks
}

func (b *ComparisonBuilder) rankByEngagement(metrics []domain.MuseumMetrics, avg float64) []domain.EngagementRank {
	sorted := make([]domain.MuseumMetrics, len(metrics))
	copy(sorted, metrics)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TotalEngagement() != sorted[j].TotalEngagement() {
			return sorted[i].TotalEngagement() > sorted[j].TotalEngagement()
		}
		return sorted[i].Museum < sorted[j].Museum
	})

	if len(sorted) > b.limit {
		sorted = sorted[:b.limit]
	}

	ranks := make([]domain.EngagementRank, len(sorted))
	for i := range sorted {
		ranks[i] = domain.EngagementRank{
			Rank:             i + 1,
			Museum:           sorted[i].Museum,
			Forum:            sorted[i].Forum,
			TotalPosts:       sorted[i].TotalPosts,
			TotalReplies:     sorted[i].TotalReplies,
			TotalEngagement:  sorted[i].TotalEngagement(),
			DeltaFromAverage: float64(sorted[i].TotalEngagement()) - avg,
		}
	}
	return ranks
}
