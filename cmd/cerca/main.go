// Command cerca is a parallel recursive text search CLI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/cerca-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/cerca-cli/internal/adapters/driven/editor"
	"github.com/custodia-labs/cerca-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/cerca-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/cerca-cli/internal/core/ports/driven"
	"github.com/custodia-labs/cerca-cli/internal/core/services"
)

func main() {
	var store driven.ConfigStore
	if s, err := file.NewConfigStore(""); err != nil {
		// A broken config file should not block searching; fall back to
		// built-in defaults.
		fmt.Fprintf(os.Stderr, "Warning: config unavailable: %v\n", err)
	} else {
		store = s
	}

	enumerator := filesystem.NewEnumerator(file.ExcludedDirs(store), file.ExcludedGlobs(store))
	classifier := filesystem.NewClassifier(file.BinaryExtensions(store))
	searcher := services.NewSearcher(enumerator, classifier)

	cli.SetServices(searcher, store, editor.NewLauncher())

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
