package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(home, ".cerca", "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyEditor, "vim"))

	val, ok := store.Get(KeyEditor)
	assert.True(t, ok)
	assert.Equal(t, "vim", val)
	assert.Equal(t, "vim", store.GetString(KeyEditor))

	_, ok = store.Get("nonexistent")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyWorkers, 4))
	require.NoError(t, store.Set("colour", true))
	require.NoError(t, store.Set(KeyExcludeDirs, []string{".git", "vendor"}))

	assert.Equal(t, 4, store.GetInt(KeyWorkers))
	assert.True(t, store.GetBool("colour"))
	assert.Equal(t, []string{".git", "vendor"}, store.GetStringSlice(KeyExcludeDirs))

	// Absent or wrongly typed keys yield zero values.
	assert.Equal(t, 0, store.GetInt("nonexistent"))
	assert.False(t, store.GetBool(KeyWorkers))
	assert.Equal(t, "", store.GetString(KeyWorkers))
	assert.Nil(t, store.GetStringSlice(KeyEditor))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()

	first, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, first.Set(KeyLineWidth, 120))
	require.NoError(t, first.Set(KeyEditor, "nano"))

	second, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 120, second.GetInt(KeyLineWidth))
	assert.Equal(t, "nano", second.GetString(KeyEditor))
}

func TestConfigStore_LoadFlattensTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := "[scan]\nworkers = 12\n\n[preview]\nline_width = 160\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 12, store.GetInt("scan.workers"))
	assert.Equal(t, 160, store.GetInt("preview.line_width"))
}

func TestConfigStore_LoadInvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not [valid"), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}
