package domain

// ComparisonSummary holds totals and averages across all museums.
type ComparisonSummary struct {
	TotalMuseums            int     `json:"total_museums"`
	TotalPosts              int     `json:"total_posts"`
	TotalReplies            int     `json:"total_replies"`
	TotalAudioGuideMentions int     `json:"total_audio_guide_mentions"`
	AverageSentimentScore   float64 `json:"average_sentiment_score"`
}

// EngagementRank is one row of the engagement ranking.
type EngagementRank struct {
	Rank             int     `json:"rank"`
	Museum           string  `json:"museum"`
	Forum            string  `json:"forum"`
	TotalPosts       int     `json:"total_posts"`
	TotalReplies     int     `json:"total_replies"`
	TotalEngagement  int     `json:"total_engagement"`
	DeltaFromAverage float64 `json:"delta_from_average"`
}

// SentimentRank is one row of the sentiment ranking.
type SentimentRank struct {
	Rank              int     `json:"rank"`
	Museum            string  `json:"museum"`
	Forum             string  `json:"forum"`
	SentimentScore    float64 `json:"sentiment_score"`
	PositiveReactions int     `json:"positive_reactions"`
	NegativeReactions int     `json:"negative_reactions"`
	DeltaFromAverage  float64 `json:"delta_from_average"`
}

// MuseumComparison is the cross-museum dataset written to
// museum_comparison.json. It is always recomputed from the full
// MuseumMetrics set, never persisted incrementally.
type MuseumComparison struct {
	Summary                ComparisonSummary `json:"summary"`
	TopMuseumsByEngagement []EngagementRank  `json:"top_museums_by_engagement"`
	TopMuseumsBySentiment  []SentimentRank   `json:"top_museums_by_sentiment"`
	ForumDistribution      map[string]int    `json:"forum_distribution"`
	ThemeDistribution      map[string]int    `json:"theme_distribution"`
	TimeTrends             map[string]int    `json:"time_trends"`
}
