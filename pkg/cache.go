// Package pkg provides reusable building blocks for codeguard.
package pkg

import (
	"container/list"
	"log/slog"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Cache is a bounded key/value store.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V)
	Clear()
	Len() int
	Cap() int
}

// fifoCache evicts the oldest inserted entry once capacity is reached. Reads
// never change the eviction order.
type fifoCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[K]*list.Element
}

type fifoEntry[K comparable, V any] struct {
	key   K
	value V
}

// NewFIFOCache creates a cache holding at most capacity entries. A capacity
// below 1 is raised to 1.
func NewFIFOCache[K comparable, V any](capacity int) Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}

	return &fifoCache[K, V]{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[K]*list.Element, capacity),
	}
}

// Get implements Cache.
func (c *fifoCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	return elem.Value.(*fifoEntry[K, V]).value, true
}

// Put implements Cache. Replacing an existing key keeps its original
// insertion position.
func (c *fifoCache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		elem.Value.(*fifoEntry[K, V]).value = value
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			evicted := c.order.Remove(oldest).(*fifoEntry[K, V])
			delete(c.entries, evicted.key)
			slog.Debug("cache eviction", "size", c.order.Len(), "capacity", c.capacity)
		}
	}

	c.entries[key] = c.order.PushBack(&fifoEntry[K, V]{key: key, value: value})
}

// Clear implements Cache.
func (c *fifoCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.entries = make(map[K]*list.Element, c.capacity)
}

// Len implements Cache.
func (c *fifoCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

// Cap implements Cache.
func (c *fifoCache[K, V]) Cap() int {
	return c.capacity
}

// ContentKey returns a fast non-cryptographic fingerprint of text. A
// non-empty discriminator (database engine, framework, ...) is folded into the
// key so the same text scanned under different contexts caches separately.
func ContentKey(text, discriminator string) string {
	digest := xxhash.New()
	_, _ = digest.WriteString(text)

	if discriminator != "" {
		_, _ = digest.WriteString("\x00")
		_, _ = digest.WriteString(discriminator)
	}

	return strconv.FormatUint(digest.Sum64(), 16)
}
