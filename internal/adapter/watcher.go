package adapter

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	m "codeguard.dev/pkg/codeguard/internal/model"
)

// DefaultDebounce is the quiet period a path needs before its event is
// delivered.
const DefaultDebounce = 300 * time.Millisecond

// FileWatcher streams debounced filesystem events for a workspace.
type FileWatcher interface {
	Events() <-chan m.FileEvent
	Errors() <-chan error
	Close() error
}

// FSNotifyWatcher watches workspace roots recursively with fsnotify.
// Directories matching an exclude pattern are never watched.
type FSNotifyWatcher struct {
	watcher  *fsnotify.Watcher
	roots    []string
	matcher  globMatcher
	debounce time.Duration

	events chan m.FileEvent
	errors chan error
	fire   chan string
	done   chan struct{}
	wg     sync.WaitGroup

	mu      sync.Mutex
	pending map[string]*pendingEvent

	closeOnce sync.Once
}

type pendingEvent struct {
	op    m.FileEventOp
	timer *time.Timer
}

// NewFSNotifyWatcher starts watching roots. A non-positive debounce uses
// DefaultDebounce.
func NewFSNotifyWatcher(roots []m.Path, exclude []string, debounce time.Duration) (*FSNotifyWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &FSNotifyWatcher{
		watcher:  fw,
		matcher:  newGlobMatcher(FileFilter{Exclude: exclude}),
		debounce: debounce,
		events:   make(chan m.FileEvent, 64),
		errors:   make(chan error, 8),
		fire:     make(chan string, 64),
		done:     make(chan struct{}),
		pending:  map[string]*pendingEvent{},
	}

	for _, root := range roots {
		abs, err := filepath.Abs(string(root))
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("resolve %s: %w", root, err)
		}

		w.roots = append(w.roots, abs)

		if err := w.addTree(abs); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w.wg.Add(1)

	go w.loop()

	return w, nil
}

// Events returns the debounced event stream. It is closed by Close.
func (w *FSNotifyWatcher) Events() <-chan m.FileEvent {
	return w.events
}

// Errors returns watcher errors. It is closed by Close.
func (w *FSNotifyWatcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching and drops pending events.
func (w *FSNotifyWatcher) Close() error {
	var err error

	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})

	return err
}

func (w *FSNotifyWatcher) loop() {
	defer w.wg.Done()
	defer close(w.events)
	defer close(w.errors)
	defer w.stopTimers()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			w.handle(event)

		case path := <-w.fire:
			w.deliver(path)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			slog.Warn("Watch error", "error", err)

			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *FSNotifyWatcher) handle(event fsnotify.Event) {
	path := filepath.Clean(event.Name)

	var op m.FileEventOp

	switch {
	case event.Has(fsnotify.Create):
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			if !w.excluded(path) {
				if err := w.addTree(path); err != nil {
					slog.Warn("Failed to watch new directory", "path", path, "error", err)
				}
			}

			return
		}

		op = m.FileCreated
	case event.Has(fsnotify.Write):
		op = m.FileChanged
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		op = m.FileDeleted
	default:
		return
	}

	if w.excluded(path) {
		return
	}

	w.schedule(path, op)
}

// schedule merges op into the pending event for path and restarts its timer.
// A change never downgrades a pending create; any other op replaces it.
func (w *FSNotifyWatcher) schedule(path string, op m.FileEventOp) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if p, ok := w.pending[path]; ok {
		p.timer.Stop()

		if !(p.op == m.FileCreated && op == m.FileChanged) {
			p.op = op
		}

		p.timer = w.newTimer(path)

		return
	}

	w.pending[path] = &pendingEvent{op: op, timer: w.newTimer(path)}
}

func (w *FSNotifyWatcher) newTimer(path string) *time.Timer {
	return time.AfterFunc(w.debounce, func() {
		select {
		case w.fire <- path:
		case <-w.done:
		}
	})
}

func (w *FSNotifyWatcher) deliver(path string) {
	w.mu.Lock()
	p, ok := w.pending[path]
	delete(w.pending, path)
	w.mu.Unlock()

	if !ok {
		return
	}

	select {
	case w.events <- m.FileEvent{Path: m.Path(path), Op: p.op}:
	case <-w.done:
	}
}

func (w *FSNotifyWatcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
}

func (w *FSNotifyWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Warn("Skipping unreadable directory", "path", path, "error", err)

			if d != nil && d.IsDir() && path != dir {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if path != dir && w.excluded(path) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}

		return nil
	})
}

func (w *FSNotifyWatcher) excluded(path string) bool {
	for _, root := range w.roots {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == "." || outsideRoot(rel) {
			continue
		}

		rel = filepath.ToSlash(rel)
		if w.matcher.excludedDir(rel) {
			return true
		}

		if dir := filepathDir(rel); dir != "" && w.matcher.excludedDir(dir) {
			return true
		}
	}

	return false
}
