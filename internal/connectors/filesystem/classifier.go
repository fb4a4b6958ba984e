package filesystem

import (
	"bytes"
	"io"
	"os"

	"github.com/custodia-labs/cerca-cli/internal/core/domain"
	"github.com/custodia-labs/cerca-cli/internal/core/ports/driven"
)

// Ensure Classifier implements the interface.
var _ driven.ContentClassifier = (*Classifier)(nil)

// probeBytes is how much of a file the classifier reads when the
// extension alone is inconclusive. Bounded so large binaries are never
// read whole.
const probeBytes = 1024

// DefaultBinaryExtensions returns the extensions always classified as
// binary without touching the file.
func DefaultBinaryExtensions() []string {
	return []string{
		".exe", ".dll", ".so", ".dylib", ".pdf", ".jpg", ".jpeg",
		".png", ".gif", ".ico", ".zip", ".rar", ".7z", ".tar",
		".gz", ".bz2", ".mp3", ".mp4", ".avi", ".mov", ".mkv",
		".pyc", ".pyo", ".class", ".o", ".obj", ".lib",
		".woff", ".woff2", ".ttf", ".jar", ".bin",
	}
}

// Classifier detects binary files by extension membership, falling back to
// a null-byte probe of the file's first kilobyte for unknown extensions.
type Classifier struct {
	binaryExtensions map[string]bool
}

// NewClassifier creates a classifier. Nil extensions falls back to
// DefaultBinaryExtensions.
func NewClassifier(extensions []string) *Classifier {
	if extensions == nil {
		extensions = DefaultBinaryExtensions()
	}
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		set[ext] = true
	}
	return &Classifier{binaryExtensions: set}
}

// IsBinary reports whether the file at path should be skipped as binary.
// Unreadable files classify as binary so the scan skips them.
func (c *Classifier) IsBinary(path string) bool {
	if c.binaryExtensions[domain.ExtensionOf(path)] {
		return true
	}
	return c.probeNullByte(path)
}

// probeNullByte reads a bounded prefix and looks for a null byte, the
// classic text/binary heuristic.
func (c *Classifier) probeNullByte(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, probeBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return true
	}
	return bytes.IndexByte(buf[:n], 0) >= 0
}
