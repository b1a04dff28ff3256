// Command analyzer runs one batch analytics pass over a scraped forum
// corpus and writes the enhanced posts, per-museum metrics, and
// cross-museum comparison documents.
package main

import (
	"context"
	"log"
	"os"

	"github.com/jonesrussell/audioguide-analyzer/internal/aggregate"
	"github.com/jonesrussell/audioguide-analyzer/internal/analyzer"
	"github.com/jonesrussell/audioguide-analyzer/internal/config"
	"github.com/jonesrussell/audioguide-analyzer/internal/ingest"
	"github.com/jonesrussell/audioguide-analyzer/internal/logger"
	"github.com/jonesrussell/audioguide-analyzer/internal/pipeline"
	"github.com/jonesrussell/audioguide-analyzer/internal/storage"
)

func main() {
	if err := run(); err != nil {
		log.Printf("run failed: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		return err
	}

	zl, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	zl.Info("starting analyzer",
		logger.String("service", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.String("input", cfg.IO.InputPath),
		logger.String("output_dir", cfg.IO.OutputDir),
		logger.Int("concurrency", cfg.Service.Concurrency),
	)

	analyzerCfg := analyzer.Config{
		Sentiment: analyzer.ScorerConfig{
			PositiveThreshold: cfg.Analysis.PositiveThreshold,
			NegativeThreshold: cfg.Analysis.NegativeThreshold,
			NegationWindow:    cfg.Analysis.NegationWindow,
		},
		ThemeMinFrequency: cfg.Analysis.ThemeMinFrequency,
		ThemeTopK:         cfg.Analysis.ThemeTopK,
		ReferenceYear:     cfg.Analysis.ReferenceYear,
	}

	store := storage.NewDocumentStore(cfg.IO.OutputDir, zl)
	normalizer := ingest.NewNormalizer(zl)
	a := analyzer.New(analyzerCfg, zl)
	metricsBuilder := aggregate.NewMetricsBuilder(a, zl)
	comparisonBuilder := aggregate.NewComparisonBuilder(cfg.Analysis.RankingLimit)

	p := pipeline.New(cfg, store, normalizer, a, metricsBuilder, comparisonBuilder, zl)

	if _, err := p.Run(context.Background()); err != nil {
		zl.Error("pipeline run failed", logger.Error(err))
		return err
	}

	return nil
}
