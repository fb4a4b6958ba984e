package services

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/cerca-cli/internal/core/domain"
	"github.com/custodia-labs/cerca-cli/internal/logger"
)

// searchOne is one worker's unit of work: classify, read and match a single
// file. It never panics outwards; an unexpected failure inside the task is
// recovered and recorded as that file's error so sibling workers and the
// pool keep running.
//
// os.ReadFile owns the file handle, so it is released on every exit path.
func (s *Searcher) searchOne(pattern *domain.Pattern, req domain.SearchRequest, cand domain.CandidatePath) (match domain.FileMatch) {
	match = domain.FileMatch{Path: cand.Path, Extension: cand.Extension}

	defer func() {
		if r := recover(); r != nil {
			match.Count = 0
			match.Context = nil
			match.Err = fmt.Errorf("worker failure: %v", r)
		}
	}()

	if !req.IncludeBinary && s.classifier != nil && s.classifier.IsBinary(cand.Path) {
		logger.Debug("Skipping binary: %s", cand.Path)
		return match
	}

	content, err := os.ReadFile(cand.Path)
	if err != nil {
		match.Err = fmt.Errorf("read file: %w", err)
		return match
	}
	match.Size = int64(len(content))

	text := string(content)
	if !utf8.ValidString(text) {
		// Undecodable content is treated as binary: skipped with zero
		// matches rather than surfaced as a failure.
		logger.Debug("Skipping undecodable: %s", cand.Path)
		return match
	}

	match.Count = pattern.Count(text)
	if match.Count == 0 || !req.WithContext {
		return match
	}

	match.Context = captureContext(pattern, text, req.LineWidth)
	return match
}

// captureContext collects the first MaxContextLines matching lines, each
// truncated to the display width around its first occurrence.
func captureContext(pattern *domain.Pattern, text string, width int) []domain.ContextLine {
	lines := pattern.FindLines(text)
	if len(lines) > domain.MaxContextLines {
		lines = lines[:domain.MaxContextLines]
	}

	context := make([]domain.ContextLine, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line.Text)
		context = append(context, domain.NewContextLine(line.Number, trimmed, pattern.Index(trimmed), width))
	}
	return context
}
