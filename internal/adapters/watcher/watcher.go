// Package watcher implements single-path file watching on top of fsnotify.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/cmkit/cmkit/internal/core/ports"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow is the default time window for coalescing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

const eventChannelBuffer = 1

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	logger ports.Logger
	window time.Duration
}

var _ ports.Watcher = (*Watcher)(nil)

// NewWatcher creates a new file system watcher.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{logger: logger, window: DefaultDebounceWindow}
}

// WithWindow overrides the debounce window. Used by tests.
func (w *Watcher) WithWindow(window time.Duration) *Watcher {
	w.window = window
	return w
}

// Watch arms a subscription for path. The watch is placed on the containing
// directory, not the file: tools replace cache files atomically via rename,
// which a file-level watch loses track of. The directory is created if it
// does not exist yet, so a driver can watch an unconfigured binary dir.
func (w *Watcher) Watch(path string) (ports.Subscription, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create watch directory"), "dir", dir)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
	}

	sub := &subscription{
		path:    filepath.Clean(path),
		fw:      fw,
		logger:  w.logger,
		events:  make(chan struct{}, eventChannelBuffer),
		runDone: make(chan struct{}),
	}
	sub.lastSum, sub.hasSum = fingerprint(sub.path)
	sub.debouncer = NewDebouncer(w.window, sub.notify)

	go sub.run()
	return sub, nil
}

// subscription is one live watch. It owns its fsnotify watcher outright; a
// subscription is never shared between drivers.
type subscription struct {
	path      string
	fw        *fsnotify.Watcher
	logger    ports.Logger
	debouncer *Debouncer
	events    chan struct{}
	runDone   chan struct{}

	mu       sync.Mutex
	lastSum  uint64
	hasSum   bool
	released bool

	releaseOnce sync.Once
	releaseErr  error
}

// Events returns the change notification channel.
func (s *subscription) Events() <-chan struct{} {
	return s.events
}

// Release stops the watch. Safe to call more than once.
func (s *subscription) Release() error {
	s.releaseOnce.Do(func() {
		s.mu.Lock()
		s.released = true
		s.mu.Unlock()

		s.debouncer.Stop()
		s.releaseErr = s.fw.Close()
		<-s.runDone
		close(s.events)
	})
	return s.releaseErr
}

// run filters raw directory events down to the watched path and feeds the
// debouncer. It exits when the fsnotify watcher is closed.
func (s *subscription) run() {
	defer close(s.runDone)

	const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

	for {
		select {
		case event, ok := <-s.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != s.path {
				continue
			}
			if event.Op&relevant == 0 {
				continue
			}
			s.debouncer.Trigger()

		case err, ok := <-s.fw.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watcher: file system error: " + err.Error())
		}
	}
}

// notify fires after the debounce window. A notification is only delivered
// when the file content actually changed: editors and generators touch files
// without changing them, and a no-op rewrite must not trigger a reload.
func (s *subscription) notify() {
	sum, ok := fingerprint(s.path)

	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	if ok == s.hasSum && sum == s.lastSum {
		s.mu.Unlock()
		return
	}
	s.lastSum, s.hasSum = sum, ok

	// Non-blocking: a notification already in flight covers this change.
	select {
	case s.events <- struct{}{}:
	default:
	}
	s.mu.Unlock()
}

// fingerprint hashes the file content. ok is false when the file is absent
// or unreadable, which is itself a distinguishable state.
func fingerprint(path string) (uint64, bool) {
	data, err := os.ReadFile(path) //nolint:gosec // path fixed at Watch time
	if err != nil {
		return 0, false
	}
	return xxhash.Sum64(data), true
}
