package workspace

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidy-notepad/internal/logger"
)

func seed(t *testing.T, fsys afero.Fs, files ...string) {
	t.Helper()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fsys, f, []byte("x"), 0o644))
	}
}

func relPaths(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.RelPath
	}
	return out
}

func TestListFiltersAndSorts(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys,
		"/ws/b.txt",
		"/ws/a.MD",
		"/ws/image.png",
		"/ws/sub/c.txt",
		"/ws/.hidden.txt",
		"/ws/.git/config.txt",
	)

	entries, err := NewScanner(fsys, "/ws", []string{".txt", ".md"}, 100).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.MD", "b.txt", "sub/c.txt"}, relPaths(entries))
	assert.Equal(t, "/ws/sub/c.txt", entries[2].Path)
}

func TestListWithoutExtensionsAcceptsAll(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "/ws/a.txt", "/ws/b.png")

	entries, err := NewScanner(fsys, "/ws", nil, 100).List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.png"}, relPaths(entries))
}

func TestListRespectsLimit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seed(t, fsys, "/ws/1.txt", "/ws/2.txt", "/ws/3.txt")

	entries, err := NewScanner(fsys, "/ws", nil, 2).List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestListMissingRoot(t *testing.T) {
	_, err := NewScanner(afero.NewMemMapFs(), "/missing", nil, 10).List()
	assert.Error(t, err)
}

func TestWatchReportsChanges(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, root, logger.NoOpLogger{}, func() { calls.Add(1) })
	}()

	// give the watcher a moment to register the root
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "note.txt"), []byte("hi"), 0o644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchMissingRoot(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone"), logger.NoOpLogger{}, func() {})
	assert.Error(t, err)
}
