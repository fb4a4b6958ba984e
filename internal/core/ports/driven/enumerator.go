package driven

import (
	"context"

	"github.com/custodia-labs/cerca-cli/internal/core/domain"
)

// PathEnumerator walks a directory tree and yields candidate files.
// Implementations prune excluded directories entirely, apply the request's
// extension filter, and never follow symlinked directories, so a link cycle
// cannot cause infinite traversal.
type PathEnumerator interface {
	// Enumerate streams candidates for one scan. The traversal is lazy,
	// finite, and deterministic for a fixed tree (lexicographic within
	// each directory). Both channels are closed when traversal finishes
	// or ctx is cancelled.
	//
	// Directories that cannot be listed are skipped, not fatal: each skip
	// surfaces as one recoverable error on the error channel and the walk
	// continues.
	Enumerate(ctx context.Context, root string, req domain.SearchRequest) (<-chan domain.CandidatePath, <-chan error)
}
