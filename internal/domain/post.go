// Package domain holds the entities shared across the analyzer pipeline.
package domain

// Sentiment is the classification label for a post or reply.
type Sentiment string

// Sentiment labels.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// RawPost represents a minimally-processed scraped forum record.
// This is the input to the pipeline from the scraping collaborator.
type RawPost struct {
	URL     string    `json:"url"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Forum   string    `json:"forum"`
	Author  string    `json:"author"`
	Time    string    `json:"time"`
	Replies []RawPost `json:"replies"`
}

// Post is the canonical enriched entity written to enhanced_posts.json.
// The museum is assigned once at ingestion and is immutable afterward;
// the derived fields are set by the analyzer and never hand-edited.
type Post struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Forum   string `json:"forum,omitempty"`
	Author  string `json:"author,omitempty"`
	Time    string `json:"time,omitempty"`
	Museum  string `json:"museum"`

	// Derived by the analyzer.
	AudioGuideMention bool      `json:"audio_guide_mention"`
	Sentiment         Sentiment `json:"sentiment"`
	SentimentScore    float64   `json:"sentiment_score"`

	// Replies are nested exactly one level deep. Deeper nesting in the
	// raw data is flattened at ingestion.
	Replies []Post `json:"replies"`
}

// FlattenReplies collapses arbitrarily nested raw replies into a single
// level, preserving order (a reply's own replies follow it directly).
// Observed forum data nests at most one level, but scraped data is not
// trusted to honor that.
func FlattenReplies(replies []RawPost) []RawPost {
	if len(replies) == 0 {
		return nil
	}

	flat := make([]RawPost, 0, len(replies))
	for _, r := range replies {
		nested := r.Replies
		r.Replies = nil
		flat = append(flat, r)
		flat = append(flat, FlattenReplies(nested)...)
	}
	return flat
}
