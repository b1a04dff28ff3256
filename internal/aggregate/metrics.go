// Package aggregate builds per-museum metrics and the cross-museum
// comparison dataset from enriched posts. Both outputs are pure
// aggregations: they are regenerated wholesale every run and are always
// reconstructable by replaying the post set.
package aggregate

import (
	"github.com/jonesrussell/audioguide-analyzer/internal/analyzer"
	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
	"github.com/jonesrussell/audioguide-analyzer/internal/logger"
)

// MetricsBuilder produces one MuseumMetrics per museum by composing the
// analyzer strategies and summing reaction counts.
type MetricsBuilder struct {
	analyzer *analyzer.Analyzer
	logger   logger.Logger
}

// NewMetricsBuilder creates a metrics builder.
func NewMetricsBuilder(a *analyzer.Analyzer, log logger.Logger) *MetricsBuilder {
	return &MetricsBuilder{analyzer: a, logger: log}
}

// Build aggregates one museum's enriched posts into a metrics record.
// A museum with zero posts yields an all-zero record with an empty theme
// list rather than being omitted, so downstream consumers see every
// museum they asked about.
func (b *MetricsBuilder) Build(museum string, posts []domain.Post) domain.MuseumMetrics {
	metrics := domain.MuseumMetrics{
		Museum:           museum,
		Forum:            "Unknown",
		CommonThemes:     []string{},
		UserEngagement:   map[string]int{},
		TimeDistribution: map[string]int{},
	}

	if len(posts) == 0 {
		return metrics
	}

	metrics.Forum = posts[0].Forum
	metrics.TotalPosts = len(posts)

	var mentionSum float64
	mentionCount := 0

	count := func(p *domain.Post) {
		switch p.Sentiment {
		case domain.SentimentPositive:
			metrics.PositiveReactions++
		case domain.SentimentNegative:
			metrics.NegativeReactions++
		default:
			metrics.NeutralReactions++
		}
		if p.AudioGuideMention {
			mentionSum += p.SentimentScore
			mentionCount++
		}
	}

	for i := range posts {
		count(&posts[i])
		metrics.TotalReplies += len(posts[i].Replies)
		for j := range posts[i].Replies {
			count(&posts[i].Replies[j])
		}
	}

	// Documented fallback: no audio-guide mentions means score 0.0, not
	// an undefined value.
	metrics.AudioGuideMentions = mentionCount
	if mentionCount > 0 {
		metrics.AudioGuideSentimentScore = mentionSum / float64(mentionCount)
	}

	metrics.CommonThemes = b.analyzer.Themes(posts)
	metrics.UserEngagement = b.analyzer.Engagement(posts)
	metrics.TimeDistribution = b.analyzer.TimeDistribution(posts)

	b.logger.Debug("museum metrics built",
		logger.String("museum", museum),
		logger.Int("total_posts", metrics.TotalPosts),
		logger.Int("total_replies", metrics.TotalReplies),
		logger.Float64("audio_guide_sentiment_score", metrics.AudioGuideSentimentScore),
	)

	return metrics
}
