package control

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const want = `Package: glamox
Version: 1.2.3
Section: non-free/misc
Priority: optional
Architecture: armhf
Maintainer: Markus Haldorsen <markus@futurehome.no>
Description: Control and monitor glamox WiFi heaters from Futurehome.
`

func debianRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.Dir(Path)), 0755))
	return root
}

func readControl(t *testing.T, root string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, Path))
	require.NoError(t, err)
	return string(b)
}

func TestString(t *testing.T) {
	assert.Equal(t, want, New("1.2.3", "armhf").String())
}

// TestStringVerbatim checks values are substituted without trimming or
// escaping
func TestStringVerbatim(t *testing.T) {
	tests := []struct {
		version string
		arch    string
	}{
		{"2.0.0-beta", "amd64"},
		{" 1.0 ", "arm64"},
		{"", ""},
		{"1:2.3~rc1+git", "all"},
	}

	for _, tt := range tests {
		lines := strings.Split(New(tt.version, tt.arch).String(), "\n")
		require.Len(t, lines, 8)
		assert.Equal(t, "Version: "+tt.version, lines[1])
		assert.Equal(t, "Architecture: "+tt.arch, lines[4])
		assert.Equal(t, "", lines[7], "descriptor must end with a newline")
	}
}

func TestEmit(t *testing.T) {
	root := debianRoot(t)

	require.NoError(t, Emit(root, "1.2.3", "armhf"))
	first := readControl(t, root)
	assert.Equal(t, want, first)

	require.NoError(t, Emit(root, "1.2.3", "armhf"))
	assert.Equal(t, first, readControl(t, root))
}

func TestEmitOverwrites(t *testing.T) {
	root := debianRoot(t)
	stale := strings.Repeat("Stale: content\n", 20)
	require.NoError(t, os.WriteFile(filepath.Join(root, Path), []byte(stale), 0644))

	require.NoError(t, Emit(root, "2.0.0-beta", "amd64"))

	got := readControl(t, root)
	assert.NotContains(t, got, "Stale")
	assert.Contains(t, got, "Version: 2.0.0-beta\n")
	assert.Contains(t, got, "Architecture: amd64\n")
}

func TestEmitMissingDir(t *testing.T) {
	err := Emit(t.TempDir(), "1.2.3", "armhf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
	assert.Contains(t, err.Error(), "write control descriptor")
}
