package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) handle(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func startWatcher(t *testing.T, path string) *recorder {
	t.Helper()
	rec := &recorder{}
	logger, _ := logtest.NewNullLogger()
	w, err := New(50*time.Millisecond, rec.handle, logger)
	require.NoError(t, err)
	require.NoError(t, w.Add(path))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, w.Run(ctx))
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return rec
}

func TestWatchDirectoryDebounces(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	rec := startWatcher(t, dir)

	page := filepath.Join(dir, "index.html")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(page, []byte("<p>x</p>"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	require.Eventually(t, func() bool {
		return len(rec.get()) >= 1
	}, 5*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, []string{page}, rec.get())
}

func TestWatchSingleFile(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	page := filepath.Join(dir, "page.tmpl")
	other := filepath.Join(dir, "other.html")
	require.NoError(t, os.WriteFile(page, []byte("<p>x</p>"), 0o644))
	rec := startWatcher(t, page)

	require.NoError(t, os.WriteFile(other, []byte("<p>y</p>"), 0o644))
	require.NoError(t, os.WriteFile(page, []byte("<p>z</p>"), 0o644))

	require.Eventually(t, func() bool {
		return len(rec.get()) >= 1
	}, 5*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, []string{page}, rec.get())
}

func TestAddMissing(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	w, err := New(time.Millisecond, func(string) {}, logger)
	require.NoError(t, err)
	assert.Error(t, w.Add(filepath.Join(t.TempDir(), "missing")))
	w.close()
}
