package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
)

func testMetrics() []domain.MuseumMetrics {
	return []domain.MuseumMetrics{
		{
			Museum:                   "Louvre Museum",
			Forum:                    "France",
			TotalPosts:               10,
			TotalReplies:             20,
			AudioGuideMentions:       12,
			AudioGuideSentimentScore: 0.4,
			CommonThemes:             []string{"mobile app", "rental"},
			TimeDistribution:         map[string]int{"2022": 5, "2023": 5},
		},
		{
			Museum:                   "Museo del Prado",
			Forum:                    "Spain",
			TotalPosts:               5,
			TotalReplies:             5,
			AudioGuideMentions:       4,
			AudioGuideSentimentScore: 0.8,
			CommonThemes:             []string{"mobile app"},
			TimeDistribution:         map[string]int{"2023": 3},
		},
		{
			Museum:                   "Vatican Museums",
			Forum:                    "Italy",
			TotalPosts:               15,
			TotalReplies:             15,
			AudioGuideMentions:       9,
			AudioGuideSentimentScore: -0.2,
			CommonThemes:             []string{"crowds"},
			TimeDistribution:         map[string]int{"2022": 10},
		},
	}
}

func TestComparisonBuilder_Build_Summary(t *testing.T) {
	b := NewComparisonBuilder(10)

	c := b.Build(testMetrics())

	assert.Equal(t, 3, c.Summary.TotalMuseums)
	assert.Equal(t, 30, c.Summary.TotalPosts)
	assert.Equal(t, 40, c.Summary.TotalReplies)
	assert.Equal(t, 25, c.Summary.TotalAudioGuideMentions)
	assert.InDelta(t, (0.4+0.8-0.2)/3, c.Summary.AverageSentimentScore, 1e-9)
}

func TestComparisonBuilder_Build_SentimentRanking(t *testing.T) {
	b := NewComparisonBuilder(10)

	c := b.Build(testMetrics())

	require.Len(t, c.TopMuseumsBySentiment, 3)
	assert.Equal(t, "Museo del Prado", c.TopMuseumsBySentiment[0].Museum)
	assert.Equal(t, "Louvre Museum", c.TopMuseumsBySentiment[1].Museum)
	assert.Equal(t, "Vatican Museums", c.TopMuseumsBySentiment[2].Museum)

	for i, rank := range c.TopMuseumsBySentiment {
		assert.Equal(t, i+1, rank.Rank)
	}

	avg := c.Summary.AverageSentimentScore
	assert.InDelta(t, 0.8-avg, c.TopMuseumsBySentiment[0].DeltaFromAverage, 1e-9)
}

func TestComparisonBuilder_Build_EngagementRanking(t *testing.T) {
	b := NewComparisonBuilder(10)

	c := b.Build(testMetrics())

	require.Len(t, c.TopMuseumsByEngagement, 3)
	assert.Equal(t, "Louvre Museum", c.TopMuseumsByEngagement[0].Museum)
	assert.Equal(t, "Vatican Museums", c.TopMuseumsByEngagement[1].Museum)
	assert.Equal(t, "Museo del Prado", c.TopMuseumsByEngagement[2].Museum)
	assert.Equal(t, 30, c.TopMuseumsByEngagement[0].TotalEngagement)
}

func TestComparisonBuilder_Build_TieBrokenByName(t *testing.T) {
	b := NewComparisonBuilder(10)

	metrics := []domain.MuseumMetrics{
		{Museum: "Zeta Gallery", AudioGuideSentimentScore: 0.5, TotalPosts: 3},
		{Museum: "Alpha Gallery", AudioGuideSentimentScore: 0.5, TotalPosts: 3},
	}

	c := b.Build(metrics)

	require.Len(t, c.TopMuseumsBySentiment, 2)
	assert.Equal(t, "Alpha Gallery", c.TopMuseumsBySentiment[0].Museum)
	assert.Equal(t, "Zeta Gallery", c.TopMuseumsBySentiment[1].Museum)

	require.Len(t, c.TopMuseumsByEngagement, 2)
	assert.Equal(t, "Alpha Gallery", c.TopMuseumsByEngagement[0].Museum)
}

func TestComparisonBuilder_Build_LimitApplied(t *testing.T) {
	b := NewComparisonBuilder(2)

	c := b.Build(testMetrics())

	assert.Len(t, c.TopMuseumsBySentiment, 2)
	assert.Len(t, c.TopMuseumsByEngagement, 2)
}

func TestComparisonBuilder_Build_Distributions(t *testing.T) {
	b := NewComparisonBuilder(10)

	c := b.Build(testMetrics())

	assert.Equal(t, map[string]int{"France": 1, "Spain": 1, "Italy": 1}, c.ForumDistribution)
	assert.Equal(t, map[string]int{"mobile app": 2, "rental": 1, "crowds": 1}, c.ThemeDistribution)
	assert.Equal(t, map[string]int{"2022": 15, "2023": 8}, c.TimeTrends)
}

func TestComparisonBuilder_Build_Empty(t *testing.T) {
	b := NewComparisonBuilder(10)

	c := b.Build(nil)

	assert.Zero(t, c.Summary.TotalMuseums)
	assert.Zero(t, c.Summary.AverageSentimentScore)
	assert.Empty(t, c.TopMuseumsBySentiment)
	assert.Empty(t, c.TopMuseumsByEngagement)
}

func TestComparisonBuilder_Build_Deterministic(t *testing.T) {
	b := NewComparisonBuilder(10)

	first := b.Build(testMetrics())
	second := b.Build(testMetrics())

	assert.Equal(t, first, second)
}
