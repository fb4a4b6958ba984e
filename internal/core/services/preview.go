package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/cerca-cli/internal/core/domain"
	"github.com/custodia-labs/cerca-cli/internal/logger"
)

// PreviewReplacement renders what each matched line would look like after
// substituting the pattern with replacement. It honours the report's case
// sensitivity and never touches the filesystem beyond re-reading files
// whose entries carry no captured context.
func (s *Searcher) PreviewReplacement(ctx context.Context, report *domain.SearchReport, replacement string) (map[string][]string, error) {
	pattern, err := domain.NewPattern(report.Request.Pattern, report.Request.CaseSensitive)
	if err != nil {
		return nil, err
	}

	previews := make(map[string][]string, len(report.Matches))
	for _, match := range report.Matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lines := match.Context
		if len(lines) == 0 {
			// Context capture was disabled for the scan; re-derive a
			// sample line so a preview is still possible.
			lines = sampleContext(pattern, match.Path, report.Request.LineWidth)
		}

		rendered := make([]string, 0, len(lines))
		for _, line := range lines {
			rendered = append(rendered,
				fmt.Sprintf("Line %d: %s", line.Number, pattern.Replace(line.Text, replacement)))
		}
		previews[match.Path] = rendered
	}
	return previews, nil
}

// sampleContext re-reads one file and extracts its first matching line.
// Read failures are recovered locally: the file simply previews as empty.
func sampleContext(pattern *domain.Pattern, path string, width int) []domain.ContextLine {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Preview: %v", err)
		return nil
	}
	text := string(content)
	if !utf8.ValidString(text) {
		return nil
	}

	for _, line := range pattern.FindLines(text) {
		trimmed := strings.TrimSpace(line.Text)
		return []domain.ContextLine{
			domain.NewContextLine(line.Number, trimmed, pattern.Index(trimmed), width),
		}
	}
	return nil
}
