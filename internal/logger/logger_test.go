package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"
)

// capture redirects the logger to a buffer for the duration of a test.
func capture(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)

	if IsVerbose() {
		t.Error("expected verbose to be off initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be on after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be off after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("scanning %s with %d workers", "/src", 8)

	if got := buf.String(); got != "[DEBUG] scanning /src with 8 workers\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("skipped %s", "node_modules")

	if buf.Len() > 0 {
		t.Error("expected no output when verbose is disabled")
	}
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Traversal")

	if got := buf.String(); got != "\n=== Traversal ===\n" {
		t.Errorf("unexpected section output: %q", got)
	}
}

func TestInfo(t *testing.T) {
	buf := capture(t, true)

	Info("matched %d files", 42)

	if got := buf.String(); got != "[INFO] matched 42 files\n" {
		t.Errorf("unexpected info output: %q", got)
	}
}

func TestWarn_SuppressedWhenQuiet(t *testing.T) {
	buf := capture(t, true)

	Warn("unreadable directory %s", "/root/.cache")
	if got := buf.String(); got != "[WARN] unreadable directory /root/.cache\n" {
		t.Errorf("unexpected warn output: %q", got)
	}

	buf.Reset()
	SetVerbose(false)
	Warn("should not appear")
	if buf.Len() > 0 {
		t.Error("expected warnings to be suppressed when quiet")
	}
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)
	// Discard tolerates parallel writes; the point here is the flag state.
	SetOutput(io.Discard)

	// Workers toggle and query the flag while the scan logs; the race
	// detector flags any unguarded state.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			SetVerbose(true)
			Debug("worker %d done", n)
			IsVerbose()
			SetVerbose(false)
		}(i)
	}
	wg.Wait()
}
