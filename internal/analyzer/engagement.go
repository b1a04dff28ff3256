package analyzer

import (
	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
)

// EngagementAggregator counts contributions (posts plus replies authored)
// per user for one museum.
type EngagementAggregator struct{}

// NewEngagementAggregator creates an engagement aggregator.
func NewEngagementAggregator() *EngagementAggregator {
	return &EngagementAggregator{}
}

// Aggregate returns author -> contribution count. Records with an empty
// author carry no user identity and are not attributed; users with zero
// contributions never appear in the map.
func (e *EngagementAggregator) Aggregate(posts []domain.Post) map[string]int {
	engagement := make(map[string]int)

	for i := range posts {
		if posts[i].Author != "" {
			engagement[posts[i].Author]++
		}
		for j := range posts[i].Replies {
			if author := posts[i].Replies[j].Author; author != "" {
				engagement[author]++
			}
		}
	}

	return engagement
}
