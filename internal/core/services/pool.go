package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/cerca-cli/internal/core/domain"
)

// collect fans the candidate queue out to a fixed pool of req.Workers
// workers and gathers every per-file result. At most Workers files are
// being read or matched at any instant; each worker takes one candidate to
// completion before the next. Results arrive unordered over a channel into
// a single collector, so no shared counters or locks are involved, and no
// candidate is ever lost or processed twice.
//
// Cancellation stops feeding new candidates; in-flight file reads run to
// completion rather than being interrupted mid-read.
func (s *Searcher) collect(
	ctx context.Context,
	pattern *domain.Pattern,
	req domain.SearchRequest,
	candidates []domain.CandidatePath,
) ([]domain.FileMatch, error) {
	tasks := make(chan domain.CandidatePath)
	resultsCh := make(chan domain.FileMatch)

	var g errgroup.Group
	for i := 0; i < req.Workers; i++ {
		g.Go(func() error {
			for cand := range tasks {
				resultsCh <- s.searchOne(pattern, req, cand)
			}
			return nil
		})
	}

	// Feeder: closes the queue once every candidate is enqueued or the
	// context is cancelled.
	go func() {
		defer close(tasks)
		for _, cand := range candidates {
			select {
			case <-ctx.Done():
				return
			case tasks <- cand:
			}
		}
	}()

	// Single collector goroutine: append-only, order-independent.
	collected := make(chan []domain.FileMatch, 1)
	go func() {
		results := make([]domain.FileMatch, 0, len(candidates))
		for m := range resultsCh {
			results = append(results, m)
			s.reportProgress(len(results), len(candidates))
		}
		collected <- results
	}()

	// Workers never return errors; per-file failures live in FileMatch.Err.
	_ = g.Wait()
	close(resultsCh)
	results := <-collected

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
