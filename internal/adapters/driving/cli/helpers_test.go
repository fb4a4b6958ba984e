package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cerca-cli/internal/adapters/driven/editor"
	"github.com/custodia-labs/cerca-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cerca-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/cerca-cli/internal/core/domain"
	"github.com/custodia-labs/cerca-cli/internal/core/ports/driving"
	"github.com/custodia-labs/cerca-cli/internal/core/services"
)

// setupTestServices wires the real searcher against an in-memory config
// store and registers cleanup that unwires everything and resets flags.
func setupTestServices(t *testing.T) *memory.ConfigStore {
	t.Helper()
	store := memory.NewConfigStore()
	searcher := services.NewSearcher(filesystem.NewEnumerator(nil, nil), filesystem.NewClassifier(nil))
	SetServices(searcher, store, editor.NewLauncher())
	t.Cleanup(func() {
		SetServices(nil, nil, nil)
		resetScanFlags()
	})
	return store
}

func resetScanFlags() {
	// Cobra remembers which flags were set across Execute calls; clear
	// that so config-default tests see a pristine command.
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })

	flagIgnoreCase = false
	flagExtensions = nil
	flagContext = false
	flagReplace = ""
	flagIncludeBinary = false
	flagWorkers = domain.DefaultWorkers
	flagLineWidth = domain.DefaultLineWidth
	flagEditor = ""
	flagNoOpen = false
	flagOpenLimit = DefaultOpenLimit
	flagJSON = false
	flagNoInput = false
	flagVerbose = false
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeTree materialises files under a fresh temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// stubSearchService records the request it was given and returns a canned
// report, for tests that only care about flag plumbing.
type stubSearchService struct {
	lastRoot string
	lastReq  domain.SearchRequest
	report   *domain.SearchReport
	err      error
}

var _ driving.SearchService = (*stubSearchService)(nil)

func (s *stubSearchService) Search(_ context.Context, root string, req domain.SearchRequest) (*domain.SearchReport, error) {
	s.lastRoot = root
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	if s.report != nil {
		return s.report, nil
	}
	return &domain.SearchReport{Request: req}, nil
}

func (s *stubSearchService) SummariseExtensions(report *domain.SearchReport) domain.ExtensionSummary {
	return domain.SummariseExtensions(report)
}

func (s *stubSearchService) FilterExtensions(report *domain.SearchReport, excluded []string) *domain.SearchReport {
	return domain.FilterExtensions(report, excluded)
}

func (s *stubSearchService) PreviewReplacement(_ context.Context, report *domain.SearchReport, _ string) (map[string][]string, error) {
	return make(map[string][]string, len(report.Matches)), nil
}

func (s *stubSearchService) SetProgress(driving.Progress) {}
