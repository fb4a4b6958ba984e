package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/custodia-labs/cerca-cli/internal/core/domain"
	"github.com/custodia-labs/cerca-cli/internal/core/ports/driven"
)

// Ensure Enumerator implements the interface.
var _ driven.PathEnumerator = (*Enumerator)(nil)

// DefaultExcludedDirs returns the directory names pruned from every
// traversal: VCS metadata, dependency caches, virtualenvs, IDE state and
// build output.
func DefaultExcludedDirs() []string {
	return []string{
		".git", ".svn", "__pycache__", "node_modules",
		".venv", "venv", "env", ".idea", ".vscode", "build", "dist",
	}
}

// Enumerator walks a directory tree and yields candidate files over a
// channel. Walking is lexicographic within each directory, so a fixed tree
// always enumerates in the same order. Symlinked directories are never
// followed; a link cycle therefore cannot cause infinite traversal.
type Enumerator struct {
	excludeDirs  map[string]bool
	excludeGlobs []string
}

// NewEnumerator creates an enumerator with the given exclusion tables.
// Nil excludeDirs falls back to DefaultExcludedDirs. excludeGlobs are
// optional doublestar patterns matched against the path relative to the
// scan root (e.g. "**/*.generated.go").
func NewEnumerator(excludeDirs, excludeGlobs []string) *Enumerator {
	if excludeDirs == nil {
		excludeDirs = DefaultExcludedDirs()
	}
	set := make(map[string]bool, len(excludeDirs))
	for _, name := range excludeDirs {
		set[name] = true
	}
	return &Enumerator{excludeDirs: set, excludeGlobs: excludeGlobs}
}

// Enumerate streams candidates under root that pass the directory, glob and
// extension filters. Both channels close when the walk finishes or ctx is
// cancelled. Unreadable directories surface as one error each and the walk
// continues with their siblings.
func (e *Enumerator) Enumerate(ctx context.Context, root string, req domain.SearchRequest) (<-chan domain.CandidatePath, <-chan error) {
	candidates := make(chan domain.CandidatePath)
	errs := make(chan error, 1)

	go func() {
		defer close(candidates)
		defer close(errs)

		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return filepath.SkipAll
			}
			if err != nil {
				// Permission failure listing a directory (or statting an
				// entry). Recoverable: count it, keep walking.
				select {
				case errs <- fmt.Errorf("traverse %s: %w", path, err):
				case <-ctx.Done():
					return filepath.SkipAll
				}
				return nil
			}

			if d.IsDir() {
				if path != root && e.excludeDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			// WalkDir does not follow symlinks; skipping irregular files
			// also drops sockets, devices and the links themselves.
			if !d.Type().IsRegular() {
				return nil
			}

			if e.matchesExcludeGlob(root, path) {
				return nil
			}
			if !req.WantsExtension(domain.ExtensionOf(path)) {
				return nil
			}

			select {
			case candidates <- domain.NewCandidatePath(path):
			case <-ctx.Done():
				return filepath.SkipAll
			}
			return nil
		})

		if walkErr != nil {
			select {
			case errs <- fmt.Errorf("walk %s: %w", root, walkErr):
			default:
			}
		}
	}()

	return candidates, errs
}

// matchesExcludeGlob reports whether the root-relative path matches any
// configured exclusion pattern.
func (e *Enumerator) matchesExcludeGlob(root, path string) bool {
	if len(e.excludeGlobs) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range e.excludeGlobs {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
