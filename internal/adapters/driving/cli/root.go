// Package cli provides the Cobra command tree for the cerca CLI.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/cerca-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cerca-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/cerca-cli/internal/core/domain"
	"github.com/custodia-labs/cerca-cli/internal/core/ports/driven"
	"github.com/custodia-labs/cerca-cli/internal/core/ports/driving"
	"github.com/custodia-labs/cerca-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected by the composition root.
var (
	searchService  driving.SearchService
	configStore    driven.ConfigStore
	editorLauncher driven.EditorLauncher
)

// Scan flags.
var (
	flagIgnoreCase    bool
	flagExtensions    []string
	flagContext       bool
	flagReplace       string
	flagIncludeBinary bool
	flagWorkers       int
	flagLineWidth     int
	flagEditor        string
	flagNoOpen        bool
	flagOpenLimit     int
	flagJSON          bool
	flagNoInput       bool
	flagVerbose       bool
)

// DefaultOpenLimit caps how many matched files one confirmation may open.
const DefaultOpenLimit = 10

var rootCmd = &cobra.Command{
	Use:   "cerca <pattern> [path]",
	Short: "Parallel recursive text search",
	Long: `Recursively searches a directory tree for a literal pattern.
Files are matched in parallel, ranked by occurrence count, and can be
narrowed interactively by extension or opened in an editor.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	RunE: runScan,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagIgnoreCase, "ignore-case", "i", false, "match regardless of letter case")
	rootCmd.Flags().StringSliceVarP(&flagExtensions, "extensions", "e", nil, "only search files with these extensions (e.g. .py,.go)")
	rootCmd.Flags().BoolVarP(&flagContext, "context", "c", false, "show matching lines for each file")
	rootCmd.Flags().StringVarP(&flagReplace, "replace", "r", "", "preview each matching line with this replacement")
	rootCmd.Flags().BoolVar(&flagIncludeBinary, "include-binary", false, "search binary files too")
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", domain.DefaultWorkers, "number of parallel workers")
	rootCmd.Flags().IntVar(&flagLineWidth, "line-width", domain.DefaultLineWidth, "truncate context lines to this width")
	rootCmd.Flags().StringVar(&flagEditor, "editor", "", "editor command for opening matched files")
	rootCmd.Flags().BoolVarP(&flagNoOpen, "no-open", "n", false, "never offer to open matched files")
	rootCmd.Flags().IntVarP(&flagOpenLimit, "limit", "l", DefaultOpenLimit, "maximum number of files to open in the editor")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "output the report as JSON")
	rootCmd.Flags().BoolVar(&flagNoInput, "no-input", false, "disable interactive prompts")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable verbose logging")
}

// SetServices injects the core service and driven adapters. Called by the
// composition root before Execute, and by tests to install mocks.
func SetServices(search driving.SearchService, store driven.ConfigStore, launcher driven.EditorLauncher) {
	searchService = search
	configStore = store
	editorLauncher = launcher
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runScan(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	root := "."
	if len(args) > 1 {
		root = args[1]
	}

	req := domain.NewSearchRequest(args[0], flagExtensions)
	req.CaseSensitive = !flagIgnoreCase
	req.WithContext = flagContext || flagReplace != ""
	req.Replacement = flagReplace
	req.IncludeBinary = flagIncludeBinary
	req.Workers = flagWorkers
	req.LineWidth = flagLineWidth
	applyConfigDefaults(cmd, &req)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if progressEnabled() {
		searchService.SetProgress(func(processed, total int) {
			fmt.Fprintf(cmd.ErrOrStderr(), "\rScanning %d/%d files", processed, total)
			if processed == total {
				fmt.Fprintln(cmd.ErrOrStderr())
			}
		})
	}

	report, err := searchService.Search(ctx, root, req)
	if err != nil {
		return err
	}

	// A single extension cannot be narrowed further, so skip the picker.
	if summary := searchService.SummariseExtensions(report); interactive() && len(summary) > 1 {
		excluded, pickErr := tui.Run(summary)
		if pickErr != nil {
			return pickErr
		}
		if len(excluded) > 0 {
			report = searchService.FilterExtensions(report, excluded)
		}
	}

	if flagJSON {
		return outputJSON(cmd, report)
	}
	if err := outputReport(cmd, ctx, report); err != nil {
		return err
	}

	return maybeOpenEditor(cmd, ctx, report)
}

// applyConfigDefaults overlays persisted preferences onto req. Flags the
// user set explicitly always win over the config file.
func applyConfigDefaults(cmd *cobra.Command, req *domain.SearchRequest) {
	file.ApplyDefaults(configStore, req,
		cmd.Flags().Changed("workers"), cmd.Flags().Changed("line-width"))
}

// maybeOpenEditor offers to open the matched files. Only in interactive
// mode; --json and --no-input runs never spawn processes.
func maybeOpenEditor(cmd *cobra.Command, ctx context.Context, report *domain.SearchReport) error {
	if editorLauncher == nil || flagNoOpen || !interactive() || len(report.Matches) == 0 {
		return nil
	}

	paths := report.Paths()
	if flagOpenLimit > 0 && len(paths) > flagOpenLimit {
		paths = paths[:flagOpenLimit]
	}

	if !promptYesNo(cmd, fmt.Sprintf("Open %d matched file(s) in editor?", len(paths))) {
		return nil
	}

	editorCmd := flagEditor
	if editorCmd == "" {
		editorCmd = file.Editor(configStore)
	}

	if err := editorLauncher.Open(ctx, editorCmd, paths); err != nil {
		// Missing editor is an inconvenience, not a failed search.
		cmd.PrintErrf("Warning: %v\n", err)
	}
	return nil
}

// interactive reports whether prompts and the extension picker may run.
func interactive() bool {
	return !flagNoInput && !flagJSON && term.IsTerminal(int(os.Stdin.Fd()))
}

// progressEnabled reports whether the scan progress line may be drawn.
func progressEnabled() bool {
	return !flagJSON && term.IsTerminal(int(os.Stderr.Fd()))
}

func promptYesNo(cmd *cobra.Command, question string) bool {
	cmd.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	input, _ := reader.ReadString('\n') //nolint:errcheck // CLI helper, error ignored for UX
	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes"
}
