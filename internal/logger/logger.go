package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultFilePath is the editor log file, relative to the working directory.
const DefaultFilePath = "logs/editor.txt"

// DefaultKeep is how many recent lines stay in memory for the on-screen overlay.
const DefaultKeep = 256

// Logger keeps the most recent lines in memory for the HUD and forwards every line
// to a slog text handler (stderr, plus the log file when one is open).
type Logger struct {
	mu    sync.Mutex
	lines []string
	keep  int
	slog  *slog.Logger
	file  *os.File
}

// New returns a Logger writing to stderr and appending to path. An empty path
// logs to stderr only. The log directory is created if needed.
func New(path string) (*Logger, error) {
	var w io.Writer = os.Stderr
	var f *os.File
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		var err error
		f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		w = io.MultiWriter(os.Stderr, f)
	}
	l := newWithWriter(w)
	l.file = f
	return l, nil
}

// NewNop returns a Logger that only keeps lines in memory.
func NewNop() *Logger {
	return newWithWriter(io.Discard)
}

func newWithWriter(w io.Writer) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	})
	return &Logger{keep: DefaultKeep, slog: slog.New(h)}
}

// Log records line. Each in-memory entry is prefixed with [timestamp].
func (l *Logger) Log(line string) {
	l.remember(line)
	l.slog.Info(line)
}

// Logf formats and records a line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Error records msg with err appended, at error level. A nil err records msg alone.
func (l *Logger) Error(msg string, err error) {
	if err == nil {
		l.remember(msg)
		l.slog.Error(msg)
		return
	}
	l.remember(msg + ": " + err.Error())
	l.slog.Error(msg, "error", err)
}

// Clip shortens line to at most n runes, ending it with "..." when cut.
func Clip(line string, n int) string {
	if utf8.RuneCountInString(line) <= n {
		return line
	}
	if n <= 3 {
		return string([]rune(line)[:max(n, 0)])
	}
	return string([]rune(line)[:n-3]) + "..."
}

func (l *Logger) remember(line string) {
	stamped := "[" + time.Now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if over := len(l.lines) - l.keep; l.keep > 0 && over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Tail returns a copy of the last n lines.
func (l *Logger) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	start := max(len(l.lines)-n, 0)
	out := make([]string, len(l.lines)-start)
	copy(out, l.lines[start:])
	return out
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
