package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default limits for a search invocation.
const (
	// DefaultWorkers is the default size of the parallel worker pool.
	DefaultWorkers = 8

	// DefaultLineWidth is the default display width for context lines.
	// Lines longer than this are truncated around the first occurrence.
	DefaultLineWidth = 200

	// MaxContextLines is the number of matching lines captured per file.
	MaxContextLines = 3
)

// SearchRequest is the immutable configuration for one search invocation.
// Construct it once, validate it, and never mutate it afterwards.
type SearchRequest struct {
	// Pattern is the literal text to search for. Never interpreted as a
	// regular expression.
	Pattern string

	// CaseSensitive controls whether matching folds case on both sides.
	CaseSensitive bool

	// Extensions restricts the scan to files with these extensions
	// (lowercase, leading dot). Empty means all files.
	Extensions []string

	// IncludeBinary disables binary detection entirely; every candidate
	// is treated as text.
	IncludeBinary bool

	// Workers is the fixed size of the parallel worker pool.
	Workers int

	// WithContext captures up to MaxContextLines matching lines per file.
	WithContext bool

	// Replacement is the optional preview replacement text. The preview
	// never touches the filesystem.
	Replacement string

	// LineWidth is the display width context lines are truncated to.
	LineWidth int
}

// NewSearchRequest builds a request with defaults applied: the worker pool
// defaults to DefaultWorkers and extensions are normalised to lowercase
// with a leading dot.
func NewSearchRequest(pattern string, extensions []string) SearchRequest {
	return SearchRequest{
		Pattern:       pattern,
		CaseSensitive: true,
		Extensions:    NormaliseExtensions(extensions),
		Workers:       DefaultWorkers,
		LineWidth:     DefaultLineWidth,
	}
}

// Validate checks the request before any traversal begins.
// A failure here is fatal at the API boundary; everything later in the
// pipeline recovers locally instead.
func (r SearchRequest) Validate() error {
	if r.Pattern == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrEmptyPattern)
	}
	if r.Workers < 1 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidInput, ErrInvalidWorkers, r.Workers)
	}
	return nil
}

// WantsExtension reports whether the extension filter admits ext.
// An empty filter admits everything.
func (r SearchRequest) WantsExtension(ext string) bool {
	if len(r.Extensions) == 0 {
		return true
	}
	ext = strings.ToLower(ext)
	for _, want := range r.Extensions {
		if want == ext {
			return true
		}
	}
	return false
}

// NormaliseExtensions lowercases extensions and ensures each carries a
// leading dot, so ".PY", "py" and ".py" all mean the same filter.
func NormaliseExtensions(extensions []string) []string {
	if len(extensions) == 0 {
		return nil
	}
	out := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

// ExtensionOf returns the lowercase extension of path, including the
// leading dot. Files without an extension map to the empty string.
func ExtensionOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
