package domain

// MuseumMetrics aggregates the analysis results for one museum. It is a
// pure aggregation over the museum's Post set and is regenerated wholesale
// on every pipeline run.
type MuseumMetrics struct {
	Museum                   string         `json:"museum"`
	Forum                    string         `json:"forum"`
	TotalPosts               int            `json:"total_posts"`
	TotalReplies             int            `json:"total_replies"`
	PositiveReactions        int            `json:"positive_reactions"`
	NegativeReactions        int            `json:"negative_reactions"`
	NeutralReactions         int            `json:"neutral_reactions"`
	AudioGuideMentions       int            `json:"audio_guide_mentions"`
	AudioGuideSentimentScore float64        `json:"audio_guide_sentiment_score"`
	CommonThemes             []string       `json:"common_themes"`
	UserEngagement           map[string]int `json:"user_engagement"`
	TimeDistribution         map[string]int `json:"time_distribution"`
}

// TotalEngagement returns posts plus replies for ranking.
func (m *MuseumMetrics) TotalEngagement() int {
	return m.TotalPosts + m.TotalReplies
}

// ReactionSum returns the sum of the three reaction classes. It must equal
// TotalEngagement for every museum.
func (m *MuseumMetrics) ReactionSum() int {
	return m.PositiveReactions + m.NegativeReactions + m.NeutralReactions
}
