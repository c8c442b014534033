package util

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceFileCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")

	require.NoError(t, ReplaceFile(path, []byte("hello")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))
}

// TestReplaceFileOverwrites checks that shorter content fully replaces longer
// content rather than leaving a tail behind
func TestReplaceFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous value"), 0600))

	require.NoError(t, ReplaceFile(path, []byte("short")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(b))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0600), info.Mode().Perm())
}

func TestReplaceFileMissingDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing", "out")

	err := ReplaceFile(path, []byte("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no temp files should be left behind")
}
