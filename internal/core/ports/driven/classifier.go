package driven

// ContentClassifier decides whether a candidate file holds binary content
// and should therefore be skipped. Implementations must inspect at most a
// bounded prefix of the file, never the whole content; large binaries are
// exactly the files this check exists to avoid reading.
//
// The classifier is bypassed entirely when a request sets IncludeBinary.
type ContentClassifier interface {
	// IsBinary reports whether the file at path should be treated as
	// binary. Unreadable files classify as binary so they are skipped.
	IsBinary(path string) bool
}
