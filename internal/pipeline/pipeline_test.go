package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/audioguide-analyzer/internal/aggregate"
	"github.com/jonesrussell/audioguide-analyzer/internal/analyzer"
	"github.com/jonesrussell/audioguide-analyzer/internal/config"
	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
	"github.com/jonesrussell/audioguide-analyzer/internal/ingest"
	"github.com/jonesrussell/audioguide-analyzer/internal/logger"
	"github.com/jonesrussell/audioguide-analyzer/internal/storage"
)

const testCorpus = `[
	{
		"url": "https://forum/louvre-1",
		"title": "Louvre audio guide",
		"content": "The audio guide was excellent and very helpful",
		"forum": "France",
		"author": "alice",
		"time": "2023",
		"replies": [
			{"content": "Agree, worth it", "author": "bob"}
		]
	},
	{
		"url": "https://forum/vatican-1",
		"title": "Vatican Museums visit",
		"content": "The audioguide was terrible and overpriced",
		"forum": "Italy",
		"author": "carol",
		"time": "3 years ago"
	},
	{
		"content": "record without a url"
	}
]`

func newTestPipeline(t *testing.T, inputPath, outputDir string) *Pipeline {
	t.Helper()

	cfg := &config.Config{
		Service: config.ServiceConfig{Concurrency: 2},
		IO: config.IOConfig{
			InputPath:         inputPath,
			OutputDir:         outputDir,
			EnhancedPostsFile: "enhanced_posts.json",
			MetricsFile:       "audio_guide_metrics.json",
			ComparisonFile:    "museum_comparison.json",
		},
	}

	log := logger.NewNop()
	a := analyzer.New(analyzer.Config{ReferenceYear: 2024}, log)

	return New(
		cfg,
		storage.NewDocumentStore(outputDir, log),
		ingest.NewNormalizer(log),
		a,
		aggregate.NewMetricsBuilder(a, log),
		aggregate.NewComparisonBuilder(10),
		log,
	)
}

func writeCorpus(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "posts.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestPipeline_Run(t *testing.T) {
	dir := t.TempDir()
	input := writeCorpus(t, dir, testCorpus)
	outputDir := filepath.Join(dir, "output")

	p := newTestPipeline(t, input, outputDir)
	summary, err := p.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, 2, summary.ProcessedPosts)
	assert.Equal(t, 1, summary.SkippedRecords)
	assert.Equal(t, 2, summary.Museums)

	for _, name := range []string{"enhanced_posts.json", "audio_guide_metrics.json", "museum_comparison.json"} {
		_, err := os.Stat(filepath.Join(outputDir, name))
		assert.NoError(t, err, "missing output document %s", name)
	}
}

func TestPipeline_Run_EnhancedPosts(t *testing.T) {
	dir := t.TempDir()
	input := writeCorpus(t, dir, testCorpus)
	outputDir := filepath.Join(dir, "output")

	p := newTestPipeline(t, input, outputDir)
	_, err := p.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "enhanced_posts.json"))
	require.NoError(t, err)

	var posts []domain.Post
	require.NoError(t, json.Unmarshal(data, &posts))
	require.Len(t, posts, 2)

	byURL := map[string]domain.Post{}
	for _, post := range posts {
		byURL[post.URL] = post
	}

	louvre := byURL["https://forum/louvre-1"]
	assert.Equal(t, "Louvre Museum", louvre.Museum)
	assert.True(t, louvre.AudioGuideMention)
	assert.Equal(t, domain.SentimentPositive, louvre.Sentiment)
	require.Len(t, louvre.Replies, 1)
	assert.Equal(t, "Louvre Museum", louvre.Replies[0].Museum)
	assert.Equal(t, domain.SentimentPositive, louvre.Replies[0].Sentiment)
	assert.False(t, louvre.Replies[0].AudioGuideMention)

	vatican := byURL["https://forum/vatican-1"]
	assert.Equal(t, "Vatican Museums", vatican.Museum)
	assert.True(t, vatican.AudioGuideMention)
	assert.Equal(t, domain.SentimentNegative, vatican.Sentiment)
}

func TestPipeline_Run_Metrics(t *testing.T) {
	dir := t.TempDir()
	input := writeCorpus(t, dir, testCorpus)
	outputDir := filepath.Join(dir, "output")

	p := newTestPipeline(t, input, outputDir)
	_, err := p.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "audio_guide_metrics.json"))
	require.NoError(t, err)

	var metrics []domain.MuseumMetrics
	require.NoError(t, json.Unmarshal(data, &metrics))
	require.Len(t, metrics, 2)

	// Records sorted by museum name.
	assert.Equal(t, "Louvre Museum", metrics[0].Museum)
	assert.Equal(t, "Vatican Museums", metrics[1].Museum)

	louvre := metrics[0]
	assert.Equal(t, 1, louvre.TotalPosts)
	assert.Equal(t, 1, louvre.TotalReplies)
	assert.Equal(t, louvre.TotalPosts+louvre.TotalReplies, louvre.ReactionSum())
	assert.Equal(t, 1, louvre.AudioGuideMentions)
	assert.Positive(t, louvre.AudioGuideSentimentScore)
	assert.Equal(t, map[string]int{"2023": 1}, louvre.TimeDistribution)

	vatican := metrics[1]
	assert.Negative(t, vatican.AudioGuideSentimentScore)
	// "3 years ago" resolved against the configured reference year.
	assert.Equal(t, map[string]int{"2021": 1}, vatican.TimeDistribution)
}

func TestPipeline_Run_Comparison(t *testing.T) {
	dir := t.TempDir()
	input := writeCorpus(t, dir, testCorpus)
	outputDir := filepath.Join(dir, "output")

	p := newTestPipeline(t, input, outputDir)
	_, err := p.Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "museum_comparison.json"))
	require.NoError(t, err)

	var comparison domain.MuseumComparison
	require.NoError(t, json.Unmarshal(data, &comparison))

	assert.Equal(t, 2, comparison.Summary.TotalMuseums)
	assert.Equal(t, 2, comparison.Summary.TotalPosts)
	assert.Equal(t, 1, comparison.Summary.TotalReplies)
	// Both top-level posts mention the guide; the reply does not.
	assert.Equal(t, 2, comparison.Summary.TotalAudioGuideMentions)

	require.Len(t, comparison.TopMuseumsBySentiment, 2)
	assert.Equal(t, "Louvre Museum", comparison.TopMuseumsBySentiment[0].Museum)
	assert.Equal(t, "Vatican Museums", comparison.TopMuseumsBySentiment[1].Museum)

	require.Len(t, comparison.TopMuseumsByEngagement, 2)
	assert.Equal(t, "Louvre Museum", comparison.TopMuseumsByEngagement[0].Museum)

	assert.Equal(t, map[string]int{"France": 1, "Italy": 1}, comparison.ForumDistribution)
}

func TestPipeline_Run_Idempotent(t *testing.T) {
	dir := t.TempDir()
	input := writeCorpus(t, dir, testCorpus)
	outputDir := filepath.Join(dir, "output")

	p := newTestPipeline(t, input, outputDir)

	_, err := p.Run(context.Background())
	require.NoError(t, err)

	first := map[string][]byte{}
	for _, name := range []string{"enhanced_posts.json", "audio_guide_metrics.json", "museum_comparison.json"} {
		data, err := os.ReadFile(filepath.Join(outputDir, name))
		require.NoError(t, err)
		first[name] = data
	}

	_, err = p.Run(context.Background())
	require.NoError(t, err)

	for name, want := range first {
		got, err := os.ReadFile(filepath.Join(outputDir, name))
		require.NoError(t, err)
		assert.Equal(t, want, got, "rerun changed %s", name)
	}
}

func TestPipeline_Run_CorruptInput(t *testing.T) {
	dir := t.TempDir()
	input := writeCorpus(t, dir, `{"this is": "not an array"`)
	outputDir := filepath.Join(dir, "output")

	p := newTestPipeline(t, input, outputDir)
	_, err := p.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, storage.ErrCorruptInput))

	// Nothing was written.
	_, statErr := os.Stat(outputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipeline_Run_MissingInput(t *testing.T) {
	dir := t.TempDir()

	p := newTestPipeline(t, filepath.Join(dir, "absent.json"), filepath.Join(dir, "output"))
	_, err := p.Run(context.Background())

	require.Error(t, err)
	assert.False(t, errors.Is(err, storage.ErrCorruptInput))
}

func TestPipeline_Run_EmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	input := writeCorpus(t, dir, `[]`)
	outputDir := filepath.Join(dir, "output")

	p := newTestPipeline(t, input, outputDir)
	summary, err := p.Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, summary.TotalRecords)
	assert.Zero(t, summary.Museums)

	data, err := os.ReadFile(filepath.Join(outputDir, "audio_guide_metrics.json"))
	require.NoError(t, err)

	var metrics []domain.MuseumMetrics
	require.NoError(t, json.Unmarshal(data, &metrics))
	assert.Empty(t, metrics)
}

func TestPartition(t *testing.T) {
	posts := []domain.Post{
		{Museum: "Louvre Museum"},
		{Museum: "Vatican Museums"},
		{Museum: "Louvre Museum"},
	}

	byMuseum := partition(posts)

	assert.Equal(t, map[string][]int{
		"Louvre Museum":   {0, 2},
		"Vatican Museums": {1},
	}, byMuseum)
}
