// Package analyzer derives sentiment, audio-guide mentions, themes, and
// engagement from normalized forum posts. All strategies are
// deterministic and share only read-only keyword tables, so one Analyzer
// can be used concurrently across museums.
package analyzer

import (
	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
	"github.com/jonesrussell/audioguide-analyzer/internal/logger"
)

// Config holds configuration for the analyzer strategies.
type Config struct {
	Sentiment         ScorerConfig
	ThemeMinFrequency int
	ThemeTopK         int
	ReferenceYear     int
}

// Analyzer orchestrates the per-post and per-museum analysis strategies.
type Analyzer struct {
	scorer     SentimentScorer
	mentions   *MentionDetector
	themes     *ThemeExtractor
	engagement *EngagementAggregator
	times      *TimeBucketer
	logger     logger.Logger
}

// New creates an analyzer with the default lexicon scorer.
func New(cfg Config, log logger.Logger) *Analyzer {
	return NewWithScorer(cfg, NewLexiconScorer(cfg.Sentiment), log)
}

// NewWithScorer creates an analyzer with an injected sentiment scorer.
func NewWithScorer(cfg Config, scorer SentimentScorer, log logger.Logger) *Analyzer {
	return &Analyzer{
		scorer:     scorer,
		mentions:   NewMentionDetector(),
		themes:     NewThemeExtractor(cfg.ThemeMinFrequency, cfg.ThemeTopK),
		engagement: NewEngagementAggregator(),
		times:      NewTimeBucketer(cfg.ReferenceYear),
		logger:     log,
	}
}

// EnrichPost derives the mention flag and sentiment for a post and its
// replies, in place. The post is scored on title plus content, replies on
// content alone.
func (a *Analyzer) EnrichPost(post *domain.Post) {
	text := post.Title + " " + post.Content
	post.AudioGuideMention = a.mentions.Mentions(text)
	post.Sentiment, post.SentimentScore = a.scorer.Score(text)

	for i := range post.Replies {
		reply := &post.Replies[i]
		reply.AudioGuideMention = a.mentions.Mentions(reply.Content)
		reply.Sentiment, reply.SentimentScore = a.scorer.Score(reply.Content)
	}

	a.logger.Debug("post enriched",
		logger.String("url", post.URL),
		logger.Bool("audio_guide_mention", post.AudioGuideMention),
		logger.Float64("sentiment_score", post.SentimentScore),
	)
}

// Themes extracts the ranked theme list for one museum's posts.
func (a *Analyzer) Themes(posts []domain.Post) []string {
	return a.themes.Extract(posts)
}

// Engagement aggregates per-user contribution counts for one museum.
func (a *Analyzer) Engagement(posts []domain.Post) map[string]int {
	return a.engagement.Aggregate(posts)
}

// TimeDistribution buckets one museum's posts by year.
func (a *Analyzer) TimeDistribution(posts []domain.Post) map[string]int {
	return a.times.Bucket(posts)
}
