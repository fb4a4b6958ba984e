package driven

import "context"

// EditorLauncher opens files in an external editor process.
// The launcher consumes the core's final file list; the core itself never
// spawns processes or mutates files.
type EditorLauncher interface {
	// Open launches the editor for each path, detached from the CLI
	// process. An editor missing from PATH is reported once; already
	// launched files stay open.
	Open(ctx context.Context, editor string, paths []string) error
}
