package adapter

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "codeguard.dev/pkg/codeguard/internal/model"
)

func TestResultStore_PutGetDelete(t *testing.T) {
	store := NewResultStore()

	store.Put(m.FileScanResult{FilePath: "/ws/b.js", Secrets: []string{"x"}, Severity: m.SeverityCritical})
	store.Put(m.FileScanResult{FilePath: "/ws/a.js", QualityIssues: []string{"y"}})

	got, ok := store.Get("/ws/b.js")
	require.True(t, ok)
	assert.Equal(t, m.SeverityCritical, got.Severity)
	assert.Equal(t, 2, store.Len())

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, m.Path("/ws/a.js"), list[0].FilePath)
	assert.Equal(t, m.Path("/ws/b.js"), list[1].FilePath)

	assert.True(t, store.Delete("/ws/a.js"))
	assert.False(t, store.Delete("/ws/a.js"))

	_, ok = store.Get("/ws/a.js")
	assert.False(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestResultStore_DeleteTree(t *testing.T) {
	store := NewResultStore()

	sep := string(filepath.Separator)
	dir := filepath.Join(sep+"ws", "src")
	paths := []m.Path{
		m.Path(filepath.Join(dir, "a.js")),
		m.Path(filepath.Join(dir, "nested", "b.js")),
		m.Path(filepath.Join(sep+"ws", "srcfile.js")),
		m.Path(filepath.Join(sep+"ws", "other.js")),
	}

	for _, p := range paths {
		store.Put(m.FileScanResult{FilePath: p})
	}

	removed := store.DeleteTree(m.Path(dir))

	assert.Equal(t, []m.Path{paths[0], paths[1]}, removed)
	assert.Equal(t, 2, store.Len())

	_, ok := store.Get(paths[2])
	assert.True(t, ok)

	assert.Equal(t, []m.Path{paths[3]}, store.DeleteTree(paths[3]))
	assert.Empty(t, store.DeleteTree(m.Path(dir)))
	assert.Equal(t, 1, store.Len())
}

func TestResultStore_PutReplaces(t *testing.T) {
	store := NewResultStore()

	store.Put(m.FileScanResult{FilePath: "/ws/a.js", Severity: m.SeverityLow})
	store.Put(m.FileScanResult{FilePath: "/ws/a.js", Severity: m.SeverityHigh})

	assert.Equal(t, 1, store.Len())

	got, _ := store.Get("/ws/a.js")
	assert.Equal(t, m.SeverityHigh, got.Severity)
}

func TestResultStore_Clear(t *testing.T) {
	store := NewResultStore()
	store.Put(m.FileScanResult{FilePath: "/ws/a.js"})

	store.Clear()

	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.List())
}

func TestResultStore_Concurrent(t *testing.T) {
	store := NewResultStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			path := m.Path("/ws/" + string(rune('a'+i)) + ".js")
			store.Put(m.FileScanResult{FilePath: path})
			store.Get(path)
			store.List()
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 20, store.Len())
}
