package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/custodia-labs/cerca-cli/internal/core/domain"
)

// TestMain verifies that no test in this package leaks a goroutine. The
// pool's feeder, workers and collector must all terminate on every path,
// including cancellation.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestCollect_EveryCandidateExactlyOnce tests that fan-out neither loses
// nor duplicates work, whatever the worker count.
func TestCollect_EveryCandidateExactlyOnce(t *testing.T) {
	root := t.TempDir()
	candidates := make([]domain.CandidatePath, 0, 100)
	for i := 0; i < 100; i++ {
		// Nonexistent paths: each one comes back as a read-error result,
		// which is enough to track delivery.
		candidates = append(candidates,
			domain.NewCandidatePath(filepath.Join(root, fmt.Sprintf("f%03d.txt", i))))
	}

	s := NewSearcher(nil, nil)
	pattern, err := domain.NewPattern("needle", true)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 8, 32} {
		req := domain.NewSearchRequest("needle", nil)
		req.Workers = workers

		results, err := s.collect(context.Background(), pattern, req, candidates)
		require.NoError(t, err)
		require.Len(t, results, len(candidates))

		seen := make(map[string]int, len(results))
		for _, m := range results {
			seen[m.Path]++
		}
		for _, cand := range candidates {
			assert.Equal(t, 1, seen[cand.Path], "workers=%d path=%s", workers, cand.Path)
		}
	}
}

// TestCollect_CancelledStopsFeeding tests that cancellation drains cleanly.
func TestCollect_CancelledStopsFeeding(t *testing.T) {
	candidates := make([]domain.CandidatePath, 0, 500)
	for i := 0; i < 500; i++ {
		candidates = append(candidates,
			domain.NewCandidatePath(fmt.Sprintf("/nonexistent/f%03d.txt", i)))
	}

	s := NewSearcher(nil, nil)
	pattern, err := domain.NewPattern("needle", true)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := domain.NewSearchRequest("needle", nil)
	_, err = s.collect(ctx, pattern, req, candidates)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCollect_ProgressMonotonic tests the processed counter against the
// fixed total.
func TestCollect_ProgressMonotonic(t *testing.T) {
	candidates := make([]domain.CandidatePath, 0, 20)
	for i := 0; i < 20; i++ {
		candidates = append(candidates,
			domain.NewCandidatePath(fmt.Sprintf("/nonexistent/f%02d.txt", i)))
	}

	s := NewSearcher(nil, nil)
	var seen []int
	s.SetProgress(func(processed, total int) {
		assert.Equal(t, len(candidates), total)
		seen = append(seen, processed)
	})

	pattern, err := domain.NewPattern("needle", true)
	require.NoError(t, err)

	req := domain.NewSearchRequest("needle", nil)
	req.Workers = 4
	_, err = s.collect(context.Background(), pattern, req, candidates)
	require.NoError(t, err)

	require.Len(t, seen, len(candidates))
	assert.True(t, sort.IntsAreSorted(seen))
	assert.Equal(t, len(candidates), seen[len(seen)-1])
}

// TestCollect_EmptyQueue tests zero candidates with a full-size pool.
func TestCollect_EmptyQueue(t *testing.T) {
	s := NewSearcher(nil, nil)
	pattern, err := domain.NewPattern("needle", true)
	require.NoError(t, err)

	results, err := s.collect(context.Background(), pattern, domain.NewSearchRequest("needle", nil), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
