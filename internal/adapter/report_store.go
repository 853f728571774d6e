package adapter

import (
	"os"
	"slices"
	"sort"
	"strings"
	"sync"

	m "codeguard.dev/pkg/codeguard/internal/model"
)

// ResultStore is the workspace-wide map of per-file scan results. It holds at
// most one result per file path.
type ResultStore interface {
	Put(result m.FileScanResult)
	Get(path m.Path) (m.FileScanResult, bool)
	Delete(path m.Path) bool
	// DeleteTree removes path and every stored path below it, returning the
	// removed paths sorted.
	DeleteTree(path m.Path) []m.Path
	List() []m.FileScanResult
	Len() int
	Clear()
}

type memoryResultStore struct {
	mu      sync.RWMutex
	results map[m.Path]m.FileScanResult
}

// NewResultStore returns an empty in-memory ResultStore.
func NewResultStore() ResultStore {
	return &memoryResultStore{results: map[m.Path]m.FileScanResult{}}
}

func (s *memoryResultStore) Put(result m.FileScanResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[result.FilePath] = result
}

func (s *memoryResultStore) Get(path m.Path) (m.FileScanResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[path]

	return result, ok
}

func (s *memoryResultStore) Delete(path m.Path) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.results[path]
	delete(s.results, path)

	return ok
}

func (s *memoryResultStore) DeleteTree(path m.Path) []m.Path {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := strings.TrimSuffix(string(path), string(os.PathSeparator)) + string(os.PathSeparator)

	var removed []m.Path

	for p := range s.results {
		if p == path || strings.HasPrefix(string(p), prefix) {
			removed = append(removed, p)
			delete(s.results, p)
		}
	}

	slices.Sort(removed)

	return removed
}

// List returns every stored result sorted by path.
func (s *memoryResultStore) List() []m.FileScanResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]m.FileScanResult, 0, len(s.results))
	for _, r := range s.results {
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].FilePath < out[j].FilePath
	})

	return out
}

func (s *memoryResultStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.results)
}

func (s *memoryResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = map[m.Path]m.FileScanResult{}
}
