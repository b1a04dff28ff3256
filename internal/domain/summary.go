package domain

import "time"

// RunSummary reports the outcome of one pipeline run.
type RunSummary struct {
	TotalRecords   int           `json:"total_records"`
	ProcessedPosts int           `json:"processed_posts"`
	SkippedRecords int           `json:"skipped_records"`
	Museums        int           `json:"museums"`
	Duration       time.Duration `json:"-"`
}
