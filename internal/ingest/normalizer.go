// Package ingest turns raw scraped forum records into canonical posts.
package ingest

import (
	"strings"

	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
	"github.com/jonesrussell/audioguide-analyzer/internal/logger"
)

// DefaultForum is used when a record does not name its source forum.
const DefaultForum = "Unknown"

// Normalizer validates and cleans raw post records. Records missing
// required fields are skipped and counted, never fatal: one bad record
// must not abort a whole run.
type Normalizer struct {
	logger logger.Logger
}

// NewNormalizer creates a new normalizer.
func NewNormalizer(log logger.Logger) *Normalizer {
	return &Normalizer{logger: log}
}

// Normalize converts raw records into canonical posts. It returns the
// usable posts and the number of skipped records (malformed top-level
// posts and malformed replies both count).
func (n *Normalizer) Normalize(raw []domain.RawPost) ([]domain.Post, int) {
	posts := make([]domain.Post, 0, len(raw))
	skipped := 0

	for i := range raw {
		rec := &raw[i]
		if !n.usable(rec) {
			skipped++
			n.logger.Warn("skipping malformed record",
				logger.Int("index", i),
				logger.String("url", rec.URL),
			)
			continue
		}

		post := n.toPost(rec)

		// The museum is assigned exactly once, here. Replies inherit it.
		post.Museum = ExtractMuseumName(post.Title, post.Content)

		for _, rawReply := range domain.FlattenReplies(rec.Replies) {
			if strings.TrimSpace(rawReply.Content) == "" {
				skipped++
				continue
			}
			reply := n.toPost(&rawReply)
			reply.Museum = post.Museum
			post.Replies = append(post.Replies, reply)
		}

		posts = append(posts, post)
	}

	return posts, skipped
}

// usable reports whether a top-level record carries the required fields.
func (n *Normalizer) usable(rec *domain.RawPost) bool {
	return strings.TrimSpace(rec.Content) != "" && strings.TrimSpace(rec.URL) != ""
}

func (n *Normalizer) toPost(rec *domain.RawPost) domain.Post {
	forum := strings.TrimSpace(rec.Forum)
	if forum == "" {
		forum = DefaultForum
	}

	return domain.Post{
		URL:     strings.TrimSpace(rec.URL),
		Title:   strings.TrimSpace(rec.Title),
		Content: strings.TrimSpace(rec.Content),
		Forum:   forum,
		Author:  strings.TrimSpace(rec.Author),
		Time:    strings.TrimSpace(rec.Time),
		Replies: []domain.Post{},
	}
}
