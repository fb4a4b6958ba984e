package domain

import (
	"sort"
	"strings"
	"time"
)

// FileError pairs a path with the read error that excluded it from the
// match list. These are recovered locally and never abort a scan.
type FileError struct {
	// Path is the file that could not be searched.
	Path string

	// Err is the underlying read error.
	Err error
}

// SearchReport is the ranked, deduplicated result of one scan. Matches are
// sorted by descending occurrence count, ties broken by ascending path for
// determinism. The report is read-only once returned to the caller.
type SearchReport struct {
	// RunID identifies the invocation that produced this report.
	RunID string

	// Request is the configuration the scan ran with.
	Request SearchRequest

	// Matches holds one entry per file with at least one occurrence.
	Matches []FileMatch

	// TotalOccurrences is the sum of all match counts.
	TotalOccurrences int

	// TotalFiles is len(Matches).
	TotalFiles int

	// Errors lists files that could not be read or decoded.
	Errors []FileError

	// SkippedDirs counts directories the traversal could not list.
	SkippedDirs int

	// Elapsed is the wall-clock duration of the scan.
	Elapsed time.Duration
}

// NewSearchReport aggregates the unordered worker output into a report.
// Zero-occurrence entries are dropped, read failures move to the error
// summary, and the remainder is sorted (count descending, path ascending).
// It is a pure function of its input: repeated calls on the same set yield
// the same report.
func NewSearchReport(req SearchRequest, results []FileMatch) *SearchReport {
	report := &SearchReport{Request: req}

	for _, m := range results {
		if m.Err != nil {
			report.Errors = append(report.Errors, FileError{Path: m.Path, Err: m.Err})
			continue
		}
		if m.Count < 1 {
			continue
		}
		report.Matches = append(report.Matches, m)
		report.TotalOccurrences += m.Count
	}

	sort.Slice(report.Matches, func(i, j int) bool {
		if report.Matches[i].Count != report.Matches[j].Count {
			return report.Matches[i].Count > report.Matches[j].Count
		}
		return report.Matches[i].Path < report.Matches[j].Path
	})
	sort.Slice(report.Errors, func(i, j int) bool {
		return report.Errors[i].Path < report.Errors[j].Path
	})
	report.TotalFiles = len(report.Matches)

	return report
}

// Paths returns the ranked file paths, ready for an editor launcher.
func (r *SearchReport) Paths() []string {
	paths := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		paths[i] = m.Path
	}
	return paths
}

// ExtensionStat aggregates occurrences for one file extension.
type ExtensionStat struct {
	// Extension is the lowercase extension with leading dot, or the empty
	// string for files without one.
	Extension string

	// Files is the number of matched files with this extension.
	Files int

	// Occurrences is the summed match count across those files.
	Occurrences int
}

// ExtensionSummary lists per-extension aggregates, sorted by descending
// occurrences with ties broken by extension. It is transient: recompute it
// whenever the report it was derived from changes.
type ExtensionSummary []ExtensionStat

// SummariseExtensions groups the report's matches by extension. Extensions
// whose file count would be zero are not represented at all.
func SummariseExtensions(report *SearchReport) ExtensionSummary {
	byExt := make(map[string]*ExtensionStat)
	for _, m := range report.Matches {
		stat, ok := byExt[m.Extension]
		if !ok {
			stat = &ExtensionStat{Extension: m.Extension}
			byExt[m.Extension] = stat
		}
		stat.Files++
		stat.Occurrences += m.Count
	}

	summary := make(ExtensionSummary, 0, len(byExt))
	for _, stat := range byExt {
		summary = append(summary, *stat)
	}
	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Occurrences != summary[j].Occurrences {
			return summary[i].Occurrences > summary[j].Occurrences
		}
		return summary[i].Extension < summary[j].Extension
	})
	return summary
}

// FilterExtensions returns a new report with every match whose extension is
// in excluded stripped out. It is a pure, strictly subtractive transform:
// totals and ranking are recomputed, errors and scan metadata carry over,
// and no entry with a non-excluded extension is ever removed.
func FilterExtensions(report *SearchReport, excluded []string) *SearchReport {
	drop := make(map[string]bool, len(excluded))
	for _, ext := range excluded {
		// Same spelling rules as NormaliseExtensions, except the empty
		// string stays: it names the no-extension group.
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		drop[ext] = true
	}

	kept := make([]FileMatch, 0, len(report.Matches))
	for _, m := range report.Matches {
		if !drop[m.Extension] {
			kept = append(kept, m)
		}
	}

	filtered := NewSearchReport(report.Request, kept)
	filtered.RunID = report.RunID
	filtered.Errors = report.Errors
	filtered.SkippedDirs = report.SkippedDirs
	filtered.Elapsed = report.Elapsed
	return filtered
}
