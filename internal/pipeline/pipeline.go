// Package pipeline orchestrates one batch analytics run: load the corpus,
// normalize it, enrich and aggregate per museum, compare across museums,
// and write the output documents.
package pipeline

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonesrussell/audioguide-analyzer/internal/aggregate"
	"github.com/jonesrussell/audioguide-analyzer/internal/analyzer"
	"github.com/jonesrussell/audioguide-analyzer/internal/config"
	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
	"github.com/jonesrussell/audioguide-analyzer/internal/ingest"
	"github.com/jonesrussell/audioguide-analyzer/internal/logger"
	"github.com/jonesrussell/audioguide-analyzer/internal/storage"
)

// Pipeline wires the ingest, analysis, and aggregation stages together.
// Per-museum work fans out over a worker pool; the comparison stage runs
// strictly after every museum's metrics are in (fan-in barrier).
type Pipeline struct {
	cfg        *config.Config
	store      *storage.DocumentStore
	normalizer *ingest.Normalizer
	analyzer   *analyzer.Analyzer
	metrics    *aggregate.MetricsBuilder
	comparison *aggregate.ComparisonBuilder
	logger     logger.Logger
}

// New creates a pipeline.
func New(
	cfg *config.Config,
	store *storage.DocumentStore,
	normalizer *ingest.Normalizer,
	a *analyzer.Analyzer,
	metrics *aggregate.MetricsBuilder,
	comparison *aggregate.ComparisonBuilder,
	log logger.Logger,
) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		store:      store,
		normalizer: normalizer,
		analyzer:   a,
		metrics:    metrics,
		comparison: comparison,
		logger:     log,
	}
}

// museumJob is one museum's slice of the corpus. Indices point into the
// shared post slice; museums are disjoint, so workers never touch the
// same post.
type museumJob struct {
	museum  string
	indices []int
}

type museumResult struct {
	metrics domain.MuseumMetrics
}

// Run executes one batch run and returns its summary. Only an unreadable
// corpus is fatal; malformed records are skipped and counted.
func (p *Pipeline) Run(ctx context.Context) (*domain.RunSummary, error) {
	start := time.Now()

	raw, err := p.store.ReadCorpus(p.cfg.IO.InputPath)
	if err != nil {
		return nil, err
	}

	posts, skipped := p.normalizer.Normalize(raw)
	if skipped > 0 {
		p.logger.Warn("skipped malformed records", logger.Int("skipped", skipped))
	}

	byMuseum := partition(posts)
	metricsList := p.processMuseums(ctx, posts, byMuseum)

	// Deterministic output order regardless of worker scheduling.
	sort.Slice(metricsList, func(i, j int) bool {
		return metricsList[i].Museum < metricsList[j].Museum
	})

	comparison := p.comparison.Build(metricsList)

	if err := p.store.WriteEnhancedPosts(p.cfg.IO.EnhancedPostsFile, posts); err != nil {
		return nil, err
	}
	if err := p.store.WriteMetrics(p.cfg.IO.MetricsFile, metricsList); err != nil {
		return nil, err
	}
	if err := p.store.WriteComparison(p.cfg.IO.ComparisonFile, &comparison); err != nil {
		return nil, err
	}

	summary := &domain.RunSummary{
		TotalRecords:   len(raw),
		ProcessedPosts: len(posts),
		SkippedRecords: skipped,
		Museums:        len(metricsList),
		Duration:       time.Since(start),
	}

	p.logger.Info("run complete",
		logger.Int("total_records", summary.TotalRecords),
		logger.Int("processed_posts", summary.ProcessedPosts),
		logger.Int("skipped_records", summary.SkippedRecords),
		logger.Int("museums", summary.Museums),
		logger.Duration("duration", summary.Duration),
	)

	return summary, nil
}

// partition groups post indices by museum, preserving corpus order
// within each museum.
func partition(posts []domain.Post) map[string][]int {
	byMuseum := make(map[string][]int)
	for i := range posts {
		byMuseum[posts[i].Museum] = append(byMuseum[posts[i].Museum], i)
	}
	return byMuseum
}

// processMuseums enriches posts and builds metrics for every museum
// using a worker pool. Workers share only the read-only analyzer tables.
func (p *Pipeline) processMuseums(ctx context.Context, posts []domain.Post, byMuseum map[string][]int) []domain.MuseumMetrics {
	if len(byMuseum) == 0 {
		return []domain.MuseumMetrics{}
	}

	concurrency := p.cfg.Service.Concurrency
	if concurrency > len(byMuseum) {
		concurrency = len(byMuseum)
	}

	jobs := make(chan museumJob, len(byMuseum))
	results := make(chan museumResult, len(byMuseum))

	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go p.worker(ctx, posts, jobs, results, &wg)
	}

	for museum, indices := range byMuseum {
		jobs <- museumJob{museum: museum, indices: indices}
	}
	close(jobs)

	wg.Wait()
	close(results)

	metricsList := make([]domain.MuseumMetrics, 0, len(byMuseum))
	for res := range results {
		metricsList = append(metricsList, res.metrics)
	}
	return metricsList
}

func (p *Pipeline) worker(
	ctx context.Context,
	posts []domain.Post,
	jobs <-chan museumJob,
	results chan<- museumResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			p.logger.Warn("worker stopping, context cancelled")
			return
		default:
		}

		museumPosts := make([]domain.Post, 0, len(job.indices))
		for _, idx := range job.indices {
			p.analyzer.EnrichPost(&posts[idx])
			museumPosts = append(museumPosts, posts[idx])
		}

		results <- museumResult{metrics: p.metrics.Build(job.museum, museumPosts)}
	}
}
