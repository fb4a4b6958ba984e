// Package editor launches an external editor on matched files.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/custodia-labs/cerca-cli/internal/core/ports/driven"
	"github.com/custodia-labs/cerca-cli/internal/logger"
)

// Ensure Launcher implements the interface.
var _ driven.EditorLauncher = (*Launcher)(nil)

// DefaultEditor is the fallback command when neither the --editor flag,
// the config file nor the EDITOR environment variable name one.
const DefaultEditor = "uedit64"

// Launcher spawns one detached editor process per file, so the CLI can
// exit while the files stay open.
type Launcher struct{}

// NewLauncher creates a new editor launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Resolve picks the editor command: the explicit choice when given,
// otherwise $EDITOR, otherwise DefaultEditor.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return DefaultEditor
}

// Open launches the editor for each path. The command is verified against
// PATH once up front; per-file launch failures are logged and skipped so
// the remaining files still open.
func (l *Launcher) Open(ctx context.Context, editor string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if editor == "" {
		editor = Resolve("")
	}

	command, err := exec.LookPath(editor)
	if err != nil {
		return fmt.Errorf("editor %q not found in PATH: %w", editor, err)
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd := exec.Command(command, path)
		if err := cmd.Start(); err != nil {
			logger.Warn("Editor launch failed for %s: %v", path, err)
			continue
		}
		logger.Debug("Opened %s in %s (pid %d)", path, editor, cmd.Process.Pid)

		// Detach: reap the child in the background so it does not linger
		// as a zombie if it exits before we do.
		go func() { _ = cmd.Wait() }()
	}
	return nil
}
