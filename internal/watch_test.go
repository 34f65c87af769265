package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcherStartStop(t *testing.T) {
	dir := t.TempDir()

	watcher, err := NewWatcher(NewEngine(DefaultRules(), false), zap.NewNop(), []string{dir}, ".rs")
	require.NoError(t, err)

	require.NoError(t, watcher.Start())
	assert.Error(t, watcher.Start(), "second Start must report it is already watching")
	require.NoError(t, watcher.Stop())
}

func TestWatcherStartMissingDir(t *testing.T) {
	watcher, err := NewWatcher(NewEngine(DefaultRules(), false), zap.NewNop(),
		[]string{filepath.Join(t.TempDir(), "missing")}, ".rs")
	require.NoError(t, err)
	defer watcher.Stop()

	assert.Error(t, watcher.Start())
}

func TestWatcherPreviewsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "handlers.rs")
	src := "fn f(m: HashMap<String, String>) {}"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	// even when built from a non-dry-run engine, the watcher only previews
	watcher, err := NewWatcher(NewEngine(DefaultRules(), false), zap.NewNop(), []string{dir}, ".rs")
	require.NoError(t, err)
	defer watcher.Stop()

	watcher.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(content))
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("HashMap<String, String>"), 0o644))

	watcher, err := NewWatcher(NewEngine(DefaultRules(), false), zap.NewNop(), []string{dir}, ".rs")
	require.NoError(t, err)
	defer watcher.Stop()

	watcher.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Write})

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "HashMap<String, String>", string(content))
}
