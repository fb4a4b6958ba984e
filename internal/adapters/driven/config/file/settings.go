package file

import (
	"github.com/custodia-labs/cerca-cli/internal/core/domain"
	"github.com/custodia-labs/cerca-cli/internal/core/ports/driven"
)

// ApplyDefaults overlays persisted preferences onto a request. Only keys
// the user never set on the command line are touched: flags always win,
// so the caller passes the request as parsed and marks what was explicit.
func ApplyDefaults(store driven.ConfigStore, req *domain.SearchRequest, explicitWorkers, explicitWidth bool) {
	if store == nil {
		return
	}

	if !explicitWorkers {
		if w := store.GetInt(KeyWorkers); w > 0 {
			req.Workers = w
		}
	}
	if !explicitWidth {
		if w := store.GetInt(KeyLineWidth); w > 0 {
			req.LineWidth = w
		}
	}
}

// ExcludedDirs returns the configured traversal exclusions, or nil when the
// user keeps the defaults.
func ExcludedDirs(store driven.ConfigStore) []string {
	if store == nil {
		return nil
	}
	return store.GetStringSlice(KeyExcludeDirs)
}

// ExcludedGlobs returns the configured path patterns to skip.
func ExcludedGlobs(store driven.ConfigStore) []string {
	if store == nil {
		return nil
	}
	return store.GetStringSlice(KeyExcludeGlobs)
}

// BinaryExtensions returns the configured binary extension table, or nil
// when the user keeps the defaults.
func BinaryExtensions(store driven.ConfigStore) []string {
	if store == nil {
		return nil
	}
	return store.GetStringSlice(KeyBinaryExtensions)
}

// Editor returns the configured editor command, or "" when unset.
func Editor(store driven.ConfigStore) string {
	if store == nil {
		return ""
	}
	return store.GetString(KeyEditor)
}
