// Package watch reparses HTML files when they change on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Handler is called with the path of a changed file once its events have
// settled for the debounce interval.
type Handler func(path string)

// Watcher debounces fsnotify events per file. Directories are watched for
// files ending in .html or .htm; files are watched individually.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	handle   Handler
	log      logrus.FieldLogger

	mu     sync.Mutex
	files  map[string]bool
	dirs   map[string]bool
	timers map[string]*time.Timer
}

func New(debounce time.Duration, handle Handler, log logrus.FieldLogger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating watcher")
	}
	return &Watcher{
		fs:       fs,
		debounce: debounce,
		handle:   handle,
		log:      log,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Add watches a file or a directory.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "resolving %s", path)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return errors.Wrapf(err, "watching %s", path)
	}

	dir := abs
	w.mu.Lock()
	if fi.IsDir() {
		w.dirs[abs] = true
	} else {
		w.files[abs] = true
		dir = filepath.Dir(abs)
	}
	w.mu.Unlock()
	// fsnotify loses single files replaced by editors; watch the parent.
	return errors.Wrapf(w.fs.Add(dir), "watching %s", dir)
}

func isHTML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

func (w *Watcher) wants(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files[path] {
		return true
	}
	return w.dirs[filepath.Dir(path)] && isHTML(path)
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.handle(path)
	})
}

// Run delivers events until ctx is cancelled, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if w.wants(ev.Name) {
				w.log.WithFields(logrus.Fields{"path": ev.Name, "op": ev.Op.String()}).Debug("change")
				w.schedule(ev.Name)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("watch error")
		}
	}
}

func (w *Watcher) close() {
	w.mu.Lock()
	for p, t := range w.timers {
		t.Stop()
		delete(w.timers, p)
	}
	w.mu.Unlock()
	if err := w.fs.Close(); err != nil {
		w.log.WithError(err).Warn("closing watcher")
	}
}
