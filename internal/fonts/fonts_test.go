package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(dir, filepath.FromSlash(n))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("font"), 0644))
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf", "README.md")

	got, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf"}, got)

	got, err = ScanDir(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindPrefersRegular(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Google_Sans/GoogleSans-Bold.ttf", "Google_Sans/GoogleSans-Regular.ttf", "Mono.otf")

	got, err := Find("google sans", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Google_Sans", "GoogleSans-Regular.ttf"), got)

	got, err = Find("mono", filepath.Join(dir, "missing"), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Mono.otf"), got)

	_, err = Find("serif", dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindAnyFont(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b.ttf", "a.otf")
	got, err := Find("", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.otf"), got)
}
