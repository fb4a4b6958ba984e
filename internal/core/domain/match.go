package domain

import "strings"

// truncationMarker is appended (and prepended, when the window starts
// mid-line) to context lines that were cut to the display width.
const truncationMarker = "..."

// ContextLine is one matching line captured for display.
type ContextLine struct {
	// Number is the 1-based line number within the file.
	Number int

	// Text is the line content, truncated to the display width.
	Text string

	// Truncated reports whether Text was cut from a longer line.
	Truncated bool
}

// NewContextLine trims and truncates a matched line for display. index is
// the byte offset of the first occurrence within the trimmed line, used to
// centre the truncation window; width is the display width. The returned
// text is never longer than width.
func NewContextLine(number int, line string, index, width int) ContextLine {
	trimmed := strings.TrimSpace(line)
	if width <= 0 {
		width = DefaultLineWidth
	}
	if len(trimmed) <= width {
		return ContextLine{Number: number, Text: trimmed}
	}
	if width <= 2*len(truncationMarker) {
		// No room for markers at pathological widths; hard cut.
		return ContextLine{Number: number, Text: trimmed[:width], Truncated: true}
	}

	// Window the line around the occurrence, keeping a little context
	// before the match and the remainder of the budget after it.
	keep := width - 2*len(truncationMarker)
	if index < 0 || index > len(trimmed) {
		index = 0
	}
	start := index - keep/3
	if start < 0 {
		start = 0
	}
	if start > len(trimmed)-keep {
		start = len(trimmed) - keep
	}

	return ContextLine{
		Number:    number,
		Text:      truncationMarker + trimmed[start:start+keep] + truncationMarker,
		Truncated: true,
	}
}

// FileMatch is the result of searching one file. It is created by a worker
// and immutable thereafter; the aggregator owns it from then on.
type FileMatch struct {
	// Path is the absolute file path.
	Path string

	// Extension is the lowercase file extension including the leading dot.
	Extension string

	// Count is the number of non-overlapping occurrences. Files with a
	// zero count never enter a report.
	Count int

	// Size is the file size in bytes.
	Size int64

	// Context holds up to MaxContextLines matching lines, in ascending
	// line-number order. Empty when context capture was not requested.
	Context []ContextLine

	// Err records a read failure. A FileMatch with a non-nil Err carries
	// no occurrences and is surfaced in the report's error summary.
	Err error
}
