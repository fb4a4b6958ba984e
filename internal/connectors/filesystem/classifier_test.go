package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassifier_BinaryExtensions tests extension-based classification
// without any file access.
func TestClassifier_BinaryExtensions(t *testing.T) {
	c := NewClassifier(nil)

	// No such files exist; the extension alone decides.
	assert.True(t, c.IsBinary("/nowhere/app.exe"))
	assert.True(t, c.IsBinary("/nowhere/IMAGE.PNG"))
	assert.True(t, c.IsBinary("/nowhere/lib.so"))
}

// TestClassifier_NullByteProbe tests the bounded-prefix heuristic for
// unknown extensions.
func TestClassifier_NullByteProbe(t *testing.T) {
	dir := t.TempDir()

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("plain text\nwith lines\n"), 0o644))

	binary := filepath.Join(dir, "blob.dat")
	require.NoError(t, os.WriteFile(binary, []byte{'M', 'Z', 0x00, 0x01, 0x02}, 0o644))

	c := NewClassifier(nil)
	assert.False(t, c.IsBinary(text))
	assert.True(t, c.IsBinary(binary))
}

// TestClassifier_NullByteBeyondProbe tests that only the prefix is
// inspected: a null byte past the probe window goes unnoticed.
func TestClassifier_NullByteBeyondProbe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tail.dat")

	content := make([]byte, probeBytes+10)
	for i := range content {
		content[i] = 'a'
	}
	content[probeBytes+5] = 0x00
	require.NoError(t, os.WriteFile(path, content, 0o644))

	assert.False(t, NewClassifier(nil).IsBinary(path))
}

// TestClassifier_UnreadableIsBinary tests that unreadable files are skipped
// by classifying them as binary.
func TestClassifier_UnreadableIsBinary(t *testing.T) {
	assert.True(t, NewClassifier(nil).IsBinary("/nowhere/missing.unknownext"))
}

// TestClassifier_InjectedTable tests construction-time overrides.
func TestClassifier_InjectedTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.custom")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o644))

	strict := NewClassifier([]string{".custom"})
	assert.True(t, strict.IsBinary(path))

	lax := NewClassifier([]string{})
	assert.False(t, lax.IsBinary(path))
}
