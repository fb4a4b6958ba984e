package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/cerca-cli/internal/core/domain"
)

// timeRounding keeps elapsed times readable in the footer.
const timeRounding = time.Millisecond

// outputReport renders the ranked report as a table: count, size and path
// per file, with context or replacement previews indented underneath.
func outputReport(cmd *cobra.Command, ctx context.Context, report *domain.SearchReport) error {
	if len(report.Matches) == 0 {
		cmd.Printf("No matches for %q.\n", report.Request.Pattern)
		outputErrors(cmd, report)
		return nil
	}

	var previews map[string][]string
	if report.Request.Replacement != "" {
		var err error
		previews, err = searchService.PreviewReplacement(ctx, report, report.Request.Replacement)
		if err != nil {
			return fmt.Errorf("replacement preview: %w", err)
		}
	}

	cmd.Printf("Matches for %q:\n\n", report.Request.Pattern)
	for _, m := range report.Matches {
		cmd.Printf("  %4d  %9s  %s\n", m.Count, humanSize(m.Size), m.Path)

		if previews != nil {
			for _, line := range previews[m.Path] {
				cmd.Printf("        %s\n", line)
			}
			continue
		}
		for _, cl := range m.Context {
			cmd.Printf("        Line %d: %s\n", cl.Number, cl.Text)
		}
	}

	outputErrors(cmd, report)

	cmd.Printf("\n%d occurrence(s) across %d file(s) in %s\n",
		report.TotalOccurrences, report.TotalFiles, report.Elapsed.Round(timeRounding))
	if report.SkippedDirs > 0 {
		cmd.Printf("%d unreadable directories skipped\n", report.SkippedDirs)
	}
	return nil
}

func outputErrors(cmd *cobra.Command, report *domain.SearchReport) {
	if len(report.Errors) == 0 {
		return
	}
	cmd.Println("\nUnreadable files:")
	for _, fe := range report.Errors {
		cmd.Printf("  %s: %v\n", fe.Path, fe.Err)
	}
}

// JSON output structures. Only the fields a caller can act on are
// exported; the raw request echoes what was searched.
type jsonContextLine struct {
	Number    int    `json:"number"`
	Text      string `json:"text"`
	Truncated bool   `json:"truncated,omitempty"`
}

type jsonMatch struct {
	Path      string            `json:"path"`
	Extension string            `json:"extension,omitempty"`
	Count     int               `json:"count"`
	Size      int64             `json:"size"`
	Context   []jsonContextLine `json:"context,omitempty"`
}

type jsonFileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type jsonReport struct {
	RunID            string          `json:"run_id"`
	Pattern          string          `json:"pattern"`
	CaseSensitive    bool            `json:"case_sensitive"`
	Matches          []jsonMatch     `json:"matches"`
	TotalFiles       int             `json:"total_files"`
	TotalOccurrences int             `json:"total_occurrences"`
	Errors           []jsonFileError `json:"errors,omitempty"`
	SkippedDirs      int             `json:"skipped_dirs,omitempty"`
	ElapsedMS        int64           `json:"elapsed_ms"`
}

func outputJSON(cmd *cobra.Command, report *domain.SearchReport) error {
	out := jsonReport{
		RunID:            report.RunID,
		Pattern:          report.Request.Pattern,
		CaseSensitive:    report.Request.CaseSensitive,
		Matches:          make([]jsonMatch, 0, len(report.Matches)),
		TotalFiles:       report.TotalFiles,
		TotalOccurrences: report.TotalOccurrences,
		SkippedDirs:      report.SkippedDirs,
		ElapsedMS:        report.Elapsed.Milliseconds(),
	}

	for _, m := range report.Matches {
		jm := jsonMatch{
			Path:      m.Path,
			Extension: m.Extension,
			Count:     m.Count,
			Size:      m.Size,
		}
		for _, cl := range m.Context {
			jm.Context = append(jm.Context, jsonContextLine{
				Number:    cl.Number,
				Text:      cl.Text,
				Truncated: cl.Truncated,
			})
		}
		out.Matches = append(out.Matches, jm)
	}
	for _, fe := range report.Errors {
		out.Errors = append(out.Errors, jsonFileError{Path: fe.Path, Error: fe.Err.Error()})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// humanSize formats a byte count the way directory listings do.
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}
