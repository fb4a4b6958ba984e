// Package domain defines the core business entities for cerca.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchRequest: Immutable per-invocation configuration
//   - Pattern: A compiled literal matcher
//   - CandidatePath: A file discovered during traversal
//   - FileMatch: Per-file match results
//   - SearchReport: The ranked result of one scan
//   - ExtensionSummary: Per-extension aggregates for interactive filtering
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
