package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/cerca-cli/internal/core/domain"
	"github.com/custodia-labs/cerca-cli/internal/core/ports/driven"
	"github.com/custodia-labs/cerca-cli/internal/core/ports/driving"
	"github.com/custodia-labs/cerca-cli/internal/logger"
)

// Ensure Searcher implements the interface.
var _ driving.SearchService = (*Searcher)(nil)

// Searcher runs parallel literal searches over a directory tree.
type Searcher struct {
	enumerator driven.PathEnumerator
	classifier driven.ContentClassifier
	progress   driving.Progress
}

// NewSearcher creates a new search service. The classifier parameter is
// optional (can be nil); without it, every candidate is treated as text.
func NewSearcher(enumerator driven.PathEnumerator, classifier driven.ContentClassifier) *Searcher {
	return &Searcher{
		enumerator: enumerator,
		classifier: classifier,
	}
}

// SetProgress installs a progress callback for subsequent scans.
func (s *Searcher) SetProgress(fn driving.Progress) {
	s.progress = fn
}

// Search walks root, fans candidate files out to a fixed-size worker pool,
// and aggregates the per-file results into a ranked report. Only a
// configuration error is fatal; traversal and read failures are recovered
// locally and summarised in the report.
func (s *Searcher) Search(ctx context.Context, root string, req domain.SearchRequest) (*domain.SearchReport, error) {
	logger.Section("Search Execution")

	if err := req.Validate(); err != nil {
		return nil, err
	}
	pattern, err := domain.NewPattern(req.Pattern, req.CaseSensitive)
	if err != nil {
		return nil, err
	}

	if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrRootNotFound, root)
	}

	runID := uuid.NewString()
	start := time.Now()
	logger.Debug("Run %s: pattern=%q case_sensitive=%t workers=%d", runID, req.Pattern, req.CaseSensitive, req.Workers)
	if len(req.Extensions) > 0 {
		logger.Debug("Extension filter: %v", req.Extensions)
	}

	candidates, skipped, err := s.enumerate(ctx, root, req)
	if err != nil {
		return nil, err
	}
	logger.Info("Enumerated %d candidates (%d directories skipped)", len(candidates), skipped)

	results, err := s.collect(ctx, pattern, req, candidates)
	if err != nil {
		return nil, err
	}

	report := domain.NewSearchReport(req, results)
	report.RunID = runID
	report.SkippedDirs = skipped
	report.Elapsed = time.Since(start)

	logger.Info("Run %s: %d files, %d occurrences, %d read errors in %s",
		runID, report.TotalFiles, report.TotalOccurrences, len(report.Errors), report.Elapsed)
	return report, nil
}

// SummariseExtensions groups a report's matches by file extension.
func (s *Searcher) SummariseExtensions(report *domain.SearchReport) domain.ExtensionSummary {
	return domain.SummariseExtensions(report)
}

// FilterExtensions strips matches with an excluded extension from a report.
func (s *Searcher) FilterExtensions(report *domain.SearchReport, excluded []string) *domain.SearchReport {
	return domain.FilterExtensions(report, excluded)
}

// enumerate drains the enumerator into a candidate queue, counting skipped
// directories from the error channel. Traversal errors are recoverable by
// contract; they reduce coverage, never abort the scan.
func (s *Searcher) enumerate(ctx context.Context, root string, req domain.SearchRequest) ([]domain.CandidatePath, int, error) {
	candidatesCh, errsCh := s.enumerator.Enumerate(ctx, root, req)

	var candidates []domain.CandidatePath
	skipped := 0

	for candidatesCh != nil || errsCh != nil {
		select {
		case <-ctx.Done():
			return nil, skipped, ctx.Err()

		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			skipped++
			logger.Warn("Traversal: %v", err)

		case cand, ok := <-candidatesCh:
			if !ok {
				candidatesCh = nil
				continue
			}
			candidates = append(candidates, cand)
		}
	}

	if ctx.Err() != nil {
		return nil, skipped, ctx.Err()
	}
	return candidates, skipped, nil
}

// reportProgress invokes the progress callback when one is installed.
func (s *Searcher) reportProgress(processed, total int) {
	if s.progress != nil {
		s.progress(processed, total)
	}
}
