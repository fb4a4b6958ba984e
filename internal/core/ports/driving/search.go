package driving

import (
	"context"

	"github.com/custodia-labs/cerca-cli/internal/core/domain"
)

// Progress is an optional callback reporting how many candidates have been
// processed so far. It observes counters only, never task completion order;
// downstream ranking is order-independent by contract.
type Progress func(processed, total int)

// SearchService is the core's single entry point for a scan plus the pure
// transforms over its report.
type SearchService interface {
	// Search walks root, matches every candidate file against the request
	// pattern using a bounded worker pool, and returns the ranked report.
	// It blocks until all workers finish. Only configuration errors are
	// fatal; traversal and per-file read errors are recovered locally and
	// summarised in the report.
	Search(ctx context.Context, root string, req domain.SearchRequest) (*domain.SearchReport, error)

	// SummariseExtensions groups a report's matches by file extension,
	// sorted by descending occurrence count.
	SummariseExtensions(report *domain.SearchReport) domain.ExtensionSummary

	// FilterExtensions returns a new report with all matches whose
	// extension is in excluded stripped out. Pure transform; the input
	// report is not modified.
	FilterExtensions(report *domain.SearchReport, excluded []string) *domain.SearchReport

	// PreviewReplacement renders, for every matched file, its captured
	// context lines with each occurrence replaced by replacement. Files
	// whose report entry carries no context lines are re-read to derive at
	// least one sample line. Nothing is ever written to disk.
	PreviewReplacement(ctx context.Context, report *domain.SearchReport, replacement string) (map[string][]string, error)

	// SetProgress installs a progress callback for subsequent scans.
	SetProgress(fn Progress)
}
