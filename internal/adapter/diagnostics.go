package adapter

import (
	"context"
	"sort"
	"sync"

	m "codeguard.dev/pkg/codeguard/internal/model"
)

// DiagnosticsPublisher is the sink that receives per-file diagnostics. An
// editor integration would forward them to its problem markers.
type DiagnosticsPublisher interface {
	// Publish replaces the diagnostics of path.
	Publish(ctx context.Context, path m.Path, diagnostics []m.Diagnostic) error
	// Delete drops every diagnostic of path.
	Delete(ctx context.Context, path m.Path) error
	// Clear drops every diagnostic.
	Clear(ctx context.Context) error
}

// DiagnosticsListener is notified after a path's diagnostics change. A nil
// slice means the path was removed.
type DiagnosticsListener func(path m.Path, diagnostics []m.Diagnostic)

// MemoryDiagnostics keeps published diagnostics in memory and fans changes
// out to subscribed listeners.
type MemoryDiagnostics struct {
	mu        sync.RWMutex
	byPath    map[m.Path][]m.Diagnostic
	listeners map[int]DiagnosticsListener
	nextID    int
}

// NewMemoryDiagnostics returns an empty MemoryDiagnostics.
func NewMemoryDiagnostics() *MemoryDiagnostics {
	return &MemoryDiagnostics{
		byPath:    map[m.Path][]m.Diagnostic{},
		listeners: map[int]DiagnosticsListener{},
	}
}

// Publish implements DiagnosticsPublisher.
func (d *MemoryDiagnostics) Publish(ctx context.Context, path m.Path, diagnostics []m.Diagnostic) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]m.Diagnostic, len(diagnostics))
	copy(stored, diagnostics)

	d.mu.Lock()
	d.byPath[path] = stored
	listeners := d.snapshotListeners()
	d.mu.Unlock()

	for _, l := range listeners {
		l(path, stored)
	}

	return nil
}

// Delete implements DiagnosticsPublisher.
func (d *MemoryDiagnostics) Delete(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	_, existed := d.byPath[path]
	delete(d.byPath, path)
	listeners := d.snapshotListeners()
	d.mu.Unlock()

	if existed {
		for _, l := range listeners {
			l(path, nil)
		}
	}

	return nil
}

// Clear implements DiagnosticsPublisher. Listeners are not notified.
func (d *MemoryDiagnostics) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.byPath = map[m.Path][]m.Diagnostic{}

	return nil
}

// Get returns the diagnostics currently published for path.
func (d *MemoryDiagnostics) Get(path m.Path) ([]m.Diagnostic, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	diags, ok := d.byPath[path]

	return diags, ok
}

// Paths returns every path with diagnostics, sorted.
func (d *MemoryDiagnostics) Paths() []m.Path {
	d.mu.RLock()
	defer d.mu.RUnlock()

	paths := make([]m.Path, 0, len(d.byPath))
	for p := range d.byPath {
		paths = append(paths, p)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

// Subscribe registers l and returns a function that removes it.
func (d *MemoryDiagnostics) Subscribe(l DiagnosticsListener) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.listeners[id] = l

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		delete(d.listeners, id)
	}
}

// snapshotListeners must be called with d.mu held.
func (d *MemoryDiagnostics) snapshotListeners() []DiagnosticsListener {
	ids := make([]int, 0, len(d.listeners))
	for id := range d.listeners {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	out := make([]DiagnosticsListener, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.listeners[id])
	}

	return out
}
