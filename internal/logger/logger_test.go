package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesAreStamped(t *testing.T) {
	l := NewNop()
	l.Log("Executed: Add Cube")
	l.Logf("key %d: %s", 9, "key not mapped")

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] Executed: Add Cube$`, lines[0])
	assert.Contains(t, lines[1], "key 9: key not mapped")
}

func TestKeepBoundsMemory(t *testing.T) {
	l := NewNop()
	l.keep = 3
	for i := 0; i < 5; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "line 2")
	assert.Contains(t, lines[2], "line 4")
}

func TestTail(t *testing.T) {
	l := NewNop()
	assert.Empty(t, l.Tail(4))
	l.Log("a")
	l.Log("b")
	l.Log("c")
	tail := l.Tail(2)
	require.Len(t, tail, 2)
	assert.Contains(t, tail[0], "b")
	assert.Contains(t, tail[1], "c")
	assert.Len(t, l.Tail(10), 3)
}

func TestErrorLine(t *testing.T) {
	l := NewNop()
	l.Error("move left", errors.New("scene is empty"))
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "move left: scene is empty")
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "editor.txt")
	l, err := New(path)
	require.NoError(t, err)
	l.Log("Add Sphere")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Add Sphere")
	assert.Contains(t, string(data), "level=INFO")
}

func TestErrorWithoutCause(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() { l.Error("remove", nil) })
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "] remove"), lines[0])
}

func TestClip(t *testing.T) {
	tests := []struct {
		line string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"assets/textures/img.png", 10, "assets/..."},
		{"textures/ünïcödé.png", 12, "textures/..."},
		{"ünïcödé", 6, "ünï..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		got := Clip(tt.line, tt.n)
		assert.Equal(t, tt.want, got, tt.line)
		assert.True(t, utf8.ValidString(got), tt.line)
	}
}
