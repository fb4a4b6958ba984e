package domain

// CandidatePath is a file discovered during traversal, eligible for
// searching once binary and extension filtering have had their say.
// It is produced by the enumerator and consumed exactly once by the
// worker pool.
type CandidatePath struct {
	// Path is the absolute filesystem path.
	Path string

	// Extension is the lowercase extension including the leading dot.
	// Empty for files without an extension.
	Extension string
}

// NewCandidatePath tags a path with its extension.
func NewCandidatePath(path string) CandidatePath {
	return CandidatePath{Path: path, Extension: ExtensionOf(path)}
}
