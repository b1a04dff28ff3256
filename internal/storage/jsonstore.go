// Package storage reads the raw post corpus and writes the analyzer's
// JSON output documents.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonesrussell/audioguide-analyzer/internal/domain"
	"github.com/jonesrussell/audioguide-analyzer/internal/logger"
)

// ErrCorruptInput marks a corpus that cannot be parsed at all. This is
// the one fatal input condition: without any parseable input there is no
// meaningful partial output.
var ErrCorruptInput = errors.New("corrupt input")

// DocumentStore handles all file I/O for a pipeline run. All input is
// read before analysis begins and all output is written after analysis
// completes; nothing blocks on I/O mid-computation.
type DocumentStore struct {
	outputDir string
	logger    logger.Logger
}

// NewDocumentStore creates a document store writing into outputDir.
func NewDocumentStore(outputDir string, log logger.Logger) *DocumentStore {
	return &DocumentStore{outputDir: outputDir, logger: log}
}

// ReadCorpus loads the raw post records from path.
func (s *DocumentStore) ReadCorpus(path string) ([]domain.RawPost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}

	var raw []domain.RawPost
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse corpus %s: %v", ErrCorruptInput, path, err)
	}

	s.logger.Info("corpus loaded",
		logger.String("path", path),
		logger.Int("records", len(raw)),
	)
	return raw, nil
}

// WriteEnhancedPosts writes the enriched post entities.
func (s *DocumentStore) WriteEnhancedPosts(name string, posts []domain.Post) error {
	return s.writeJSON(name, posts)
}

// WriteMetrics writes the per-museum metrics records.
func (s *DocumentStore) WriteMetrics(name string, metrics []domain.MuseumMetrics) error {
	return s.writeJSON(name, metrics)
}

// WriteComparison writes the cross-museum comparison dataset.
func (s *DocumentStore) WriteComparison(name string, comparison *domain.MuseumComparison) error {
	return s.writeJSON(name, comparison)
}

// writeJSON marshals v with two-space indentation and writes it
// atomically (temp file plus rename), so a failed run never leaves a
// truncated document behind. encoding/json emits map keys in sorted
// order, which keeps reruns byte-identical.
func (s *DocumentStore) writeJSON(name string, v any) error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", s.outputDir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	path := filepath.Join(s.outputDir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}

	s.logger.Info("document written",
		logger.String("path", path),
		logger.Int("bytes", len(data)),
	)
	return nil
}
